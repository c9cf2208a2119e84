package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/rocketberry/internal/core"
)

func TestParseSheet(t *testing.T) {
	data := []byte(`
name: test
palette:
  a: "#ff0000"
  b: "0x8000ff00"
sprites:
  - name: dot
    rows:
      - ".a."
      - "bab"
`)
	sheet, err := ParseSheet(data)
	if err != nil {
		t.Fatalf("ParseSheet() error = %v", err)
	}
	sp := sheet.Sprites["dot"]
	if sp == nil {
		t.Fatal("sprite \"dot\" missing")
	}
	if sp.Width() != 3 || sp.Height() != 2 {
		t.Errorf("size = %dx%d, expected 3x2", sp.Width(), sp.Height())
	}
	if sp.At(0, 0) != core.Transparent {
		t.Error("'.' should be transparent")
	}
	if sp.At(1, 0) != core.ColorRed {
		t.Errorf("At(1, 0) = %#x, expected red", uint32(sp.At(1, 0)))
	}
	if sp.At(0, 1) != core.Color(0x8000ff00) {
		t.Errorf("At(0, 1) = %#x, expected 0x8000ff00", uint32(sp.At(0, 1)))
	}
}

func TestParseSheetErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected error
	}{
		{
			name:     "ragged rows",
			data:     "palette: {a: \"#ffffff\"}\nsprites:\n  - name: x\n    rows: [\"aa\", \"a\"]\n",
			expected: ErrRaggedSprite,
		},
		{
			name:     "unknown key",
			data:     "palette: {a: \"#ffffff\"}\nsprites:\n  - name: x\n    rows: [\"az\"]\n",
			expected: ErrUnknownKey,
		},
		{
			name:     "bad color",
			data:     "palette: {a: \"purple\"}\nsprites: []\n",
			expected: ErrBadPalette,
		},
		{
			name:     "multi-char key",
			data:     "palette: {ab: \"#ffffff\"}\nsprites: []\n",
			expected: ErrBadPalette,
		},
		{
			name:     "duplicate sprite",
			data:     "palette: {a: \"#ffffff\"}\nsprites:\n  - {name: x, rows: [a]}\n  - {name: x, rows: [a]}\n",
			expected: ErrDuplicateName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSheet([]byte(tc.data))
			if !errors.Is(err, tc.expected) {
				t.Errorf("ParseSheet() error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 29 {
		t.Errorf("Len() = %d, expected 29", c.Len())
	}

	sizes := map[string][2]int{
		"rocket":    {14, 23},
		"laser":     {1, 4},
		"asteroid1": {18, 16},
		"asteroid2": {19, 16},
		"asteroid3": {27, 24},
		"bug_walk1": {19, 11},
	}
	for name, wh := range sizes {
		sp := c.Sprite(name)
		if sp == nil {
			t.Errorf("sprite %q missing", name)
			continue
		}
		if sp.Width() != wh[0] || sp.Height() != wh[1] {
			t.Errorf("%s = %dx%d, expected %dx%d", name, sp.Width(), sp.Height(), wh[0], wh[1])
		}
	}
}

func TestAnimations(t *testing.T) {
	a, err := LoadAnimations()
	if err != nil {
		t.Fatalf("LoadAnimations() error = %v", err)
	}
	if len(a.Player) != 5 {
		t.Errorf("len(Player) = %d, expected 5", len(a.Player))
	}
	if a.ObstacleTypes() != 3 {
		t.Errorf("ObstacleTypes() = %d, expected 3", a.ObstacleTypes())
	}
	for i, tab := range a.Obstacles {
		if len(tab) != 5 {
			t.Errorf("obstacle %d table has %d frames, expected 5", i, len(tab))
		}
	}
	if len(a.EnemyWalk) != 4 || len(a.EnemyExplode) != 5 {
		t.Errorf("enemy tables = %d/%d, expected 4/5", len(a.EnemyWalk), len(a.EnemyExplode))
	}
	if a.EnemyExplode[0] != a.EnemyWalk[0] {
		t.Error("enemy explosion should start from the first walk frame")
	}
	if a.Projectile == nil {
		t.Error("projectile sprite missing")
	}
}

func TestTableFrameClamps(t *testing.T) {
	a, err := LoadAnimations()
	if err != nil {
		t.Fatal(err)
	}
	if a.Player.Frame(-1) != a.Player[0] || a.Player.Frame(99) != a.Player[4] {
		t.Error("Frame should clamp to the table bounds")
	}
	if Table(nil).Frame(0) != nil {
		t.Error("empty table should yield nil")
	}
	if a.Obstacle(7)[0] != a.Obstacles[0][0] {
		t.Error("Obstacle should fall back to type 0")
	}
}

func TestLoadFSDuplicateAcrossSheets(t *testing.T) {
	sheet := []byte("palette: {a: \"#ffffff\"}\nsprites:\n  - {name: x, rows: [a]}\n")
	fsys := fstest.MapFS{
		"s/one.yaml": {Data: sheet},
		"s/two.yaml": {Data: sheet},
	}
	_, err := LoadFS(fsys, "s")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("LoadFS() error = %v, expected ErrDuplicateName", err)
	}
}
