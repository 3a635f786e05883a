/*
 * doc.go, part of mdtools.
 *
 * Copyright 2023 The mdtools developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package md provides tools for the analysis of molecular dynamics
trajectories: a frame-selection iterator over sequential trajectory
backends, quaternion-based structural superposition, and RMSD
calculations over single frames, whole trajectories and pairs of
frames arranged as a matrix.

Coordinates are kept in v3.Matrix objects, Nx3 matrices where each row
contains the cartesian coordinates of one atom, backed by gonum dense
matrices.
*/
package md
