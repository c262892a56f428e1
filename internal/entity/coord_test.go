package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordFromIndex(t *testing.T) {
	for i := range CellCount {
		c, err := CoordFromIndex(i)

		require.NoError(t, err)
		assert.Equal(t, i, c.Index())
		assert.Equal(t, Coord{Row: i / 3, Col: i % 3}, c)
	}

	_, err := CoordFromIndex(9)
	require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Coord
		wantErr error
	}{
		{name: "Comma separated", input: "1,2", want: Coord{Row: 1, Col: 2}},
		{name: "Space separated", input: " 2 0 ", want: Coord{Row: 2, Col: 0}},
		{name: "Flat index", input: "4", want: Coord{Row: 1, Col: 1}},
		{name: "Slice range", input: "0:3", wantErr: apperror.ErrInvalidMove},
		{name: "Stepped slice", input: "0:9:3", wantErr: apperror.ErrInvalidMove},
		{name: "Dash range", input: "0-2", wantErr: apperror.ErrInvalidMove},
		{name: "Negative index", input: "-1", wantErr: apperror.ErrInvalidCoordinate},
		{name: "Negative column", input: "0,-1", wantErr: apperror.ErrInvalidCoordinate},
		{name: "Negative column after a space", input: "1 -2", wantErr: apperror.ErrInvalidCoordinate},
		{name: "Spaced dash", input: "0 - 2", wantErr: apperror.ErrInvalidCoordinate},
		{name: "Row out of range", input: "3,0", wantErr: apperror.ErrInvalidCoordinate},
		{name: "Index out of range", input: "9", wantErr: apperror.ErrInvalidCoordinate},
		{name: "Not a number", input: "a,b", wantErr: apperror.ErrInvalidCoordinate},
		{name: "Too many fields", input: "1 1 1", wantErr: apperror.ErrInvalidCoordinate},
		{name: "Empty", input: "  ", wantErr: apperror.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoord(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
