package battleship

import (
	"errors"
	"testing"

	cerr "github.com/battledinghy/dinghy-backend/internal/error"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Coordinates
		wantErr error
	}{
		{name: "top left corner", raw: "A1", want: NewCoordinates(0, 0)},
		{name: "bottom right corner", raw: "F6", want: NewCoordinates(5, 5)},
		{name: "lowercase accepted", raw: "b3", want: NewCoordinates(1, 2)},
		{name: "surrounding whitespace", raw: " C4 ", want: NewCoordinates(2, 3)},
		{name: "row out of range", raw: "G1", wantErr: cerr.ErrInvalidCoordinate},
		{name: "column too high", raw: "A7", wantErr: cerr.ErrInvalidCoordinate},
		{name: "column zero", raw: "A0", wantErr: cerr.ErrInvalidCoordinate},
		{name: "empty", raw: "", wantErr: cerr.ErrInvalidCoordinate},
		{name: "too long", raw: "A11", wantErr: cerr.ErrInvalidCoordinate},
		{name: "digits only", raw: "11", wantErr: cerr.ErrInvalidCoordinate},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseCoordinate(test.raw)

			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("expected error %v, got %v", test.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Fatalf("expected %+v, got %+v", test.want, got)
			}
		})
	}
}

func TestCoordinateLabelRoundTrip(t *testing.T) {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			coord := NewCoordinates(row, col)
			parsed, err := ParseCoordinate(coord.Label())
			if err != nil {
				t.Fatalf("label %s failed to parse back: %v", coord.Label(), err)
			}
			if parsed != coord {
				t.Fatalf("round trip mismatch: %+v -> %s -> %+v", coord, coord.Label(), parsed)
			}
		}
	}
}

func TestParseFireCommand(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  Coordinates
		found bool
	}{
		{name: "plain command", text: "fire B5", want: NewCoordinates(1, 4), found: true},
		{name: "mixed case", text: "Fire c3", want: NewCoordinates(2, 2), found: true},
		{name: "inside a mention", text: "@battle_dinghy fire A1 take that!", want: NewCoordinates(0, 0), found: true},
		{name: "extra spaces", text: "fire   D6", want: NewCoordinates(3, 5), found: true},
		{name: "no command", text: "good game!", found: false},
		{name: "coordinate without fire", text: "B5", found: false},
		{name: "out of range coordinate", text: "fire G9", found: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, found := ParseFireCommand(test.text)
			if found != test.found {
				t.Fatalf("expected found=%v, got %v", test.found, found)
			}
			if found && got != test.want {
				t.Fatalf("expected %+v, got %+v", test.want, got)
			}
		})
	}
}

func TestGridCopyIsDeep(t *testing.T) {
	grid := NewGrid()
	grid[0][0] = CellBigDinghy

	copied := grid.Copy()
	copied[0][0] = CellMiss

	if grid[0][0] != CellBigDinghy {
		t.Fatal("mutating the copy changed the original grid")
	}
}
