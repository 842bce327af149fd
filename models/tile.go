// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// TileCoordinate identifies a map tile. It is comparable and can be used as a
// map key.
type TileCoordinate struct {
	X int32
	Y int32
}

func (c TileCoordinate) String() string {
	return fmt.Sprintf("%d/%d", c.X, c.Y)
}
