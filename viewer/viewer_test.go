package viewer

import (
	"errors"
	"image"
	"testing"
)

func TestShowRejectsNilImage(t *testing.T) {
	if err := Show(nil, "x"); !errors.Is(err, ErrNilImage) {
		t.Errorf("err = %v, want ErrNilImage", err)
	}
}

func TestLayoutKeepsNativeResolution(t *testing.T) {
	g := &game{src: image.NewRGBA(image.Rect(0, 0, 600, 450)), w: 600, h: 450}
	w, h := g.Layout(1920, 1080)
	if w != 600 || h != 450 {
		t.Errorf("Layout = %dx%d, want 600x450", w, h)
	}
}
