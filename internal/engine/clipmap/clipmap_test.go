package clipmap

import "testing"

func TestConstants(t *testing.T) {
	if TextureSize%2 != 1 {
		t.Errorf("TextureSize must be odd, got %d", TextureSize)
	}
	if 4*BlockSize-1 != TextureSize {
		t.Errorf("BlockSize %d does not satisfy N = 4m-1 for N=%d", BlockSize, TextureSize)
	}
}

func TestNewLevels(t *testing.T) {
	cm := New()

	if len(cm.Levels) != LevelCount {
		t.Fatalf("level count: got %d, want %d", len(cm.Levels), LevelCount)
	}

	wantScale := float32(1)
	for i, lvl := range cm.Levels {
		if lvl.Scale != wantScale {
			t.Errorf("level %d scale: got %f, want %f", i, lvl.Scale, wantScale)
		}
		if !lvl.Active {
			t.Errorf("level %d should be active after init", i)
		}
		if lvl.WorldOffset.X != 0 || lvl.WorldOffset.Y != 0 {
			t.Errorf("level %d offset should start at origin, got %v", i, lvl.WorldOffset)
		}
		if lvl.UpdateCount != 0 {
			t.Errorf("level %d update count should start at 0, got %d", i, lvl.UpdateCount)
		}
		wantScale *= 2
	}
}

func TestGridSpacingMonotonic(t *testing.T) {
	cm := New()

	if cm.GridSpacing(0) != BaseSpacing {
		t.Errorf("finest spacing: got %f, want %f", cm.GridSpacing(0), float32(BaseSpacing))
	}
	for i := 1; i < LevelCount; i++ {
		if cm.GridSpacing(i) != 2*cm.GridSpacing(i-1) {
			t.Errorf("spacing of level %d is not double level %d", i, i-1)
		}
	}
}
