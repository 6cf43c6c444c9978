package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
	Small FontName = "small"
	Bold  FontName = "bold"
)

// Get returns the x/image face used by the page renderers.
func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the same face wrapped for ebitenui.
func (f FontName) Face() text.Face {
	if tf, ok := uiFaces[f]; ok {
		return tf
	}
	tf := text.NewGoXFace(getFont(f))
	uiFaces[f] = tf
	return tf
}

var (
	fonts   = map[FontName]font.Face{}
	uiFaces = map[FontName]text.Face{}
)

// LoadDefaults loads the Go fonts at the page's text sizes.
func LoadDefaults(body, title, small float64) error {
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Body, goregular.TTF, body},
		{Title, goregular.TTF, title},
		{Small, goregular.TTF, small},
		{Bold, gobold.TTF, body},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(uiFaces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
