package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"path"
)

const (
	seedOwner = "charrrrls"
	seedRepo  = "mypic"
)

// seedFolders is the photo tree served for charrrrls/mypic. Folder names
// cover unicode and spaces; "notes" has no images at all.
var seedFolders = map[string][]string{
	"travel":    {"beach.jpg", "cover.jpg", "mountains.png"},
	"旅行":        {"京都.jpg", "封面.png", "奈良.webp"},
	"city walk": {"night street.jpg", "rooftop.png"},
	"pets":      {"cat.gif", "dog.jpeg", "vet-bill.pdf"},
	"notes":     {"todo.txt"},
}

// seedRepos populates the file store before the server accepts requests.
func seedRepos(s *store) error {
	s.put(seedOwner, seedRepo, "README.md", []byte("# mypic\n\nPhotos, one folder per album.\n"))

	i := 0
	for folder, names := range seedFolders {
		for _, name := range names {
			content, err := sampleFile(name, i)
			if err != nil {
				return fmt.Errorf("seed %s/%s: %w", folder, name, err)
			}
			s.put(seedOwner, seedRepo, folder+"/"+name, content)
			i++
		}
	}
	return nil
}

var palette = []color.RGBA{
	{R: 0xe0, G: 0x6c, B: 0x75, A: 0xff},
	{R: 0x98, G: 0xc3, B: 0x79, A: 0xff},
	{R: 0x61, G: 0xaf, B: 0xef, A: 0xff},
	{R: 0xe5, G: 0xc0, B: 0x7b, A: 0xff},
	{R: 0xc6, G: 0x78, B: 0xdd, A: 0xff},
}

// sampleFile returns a small solid-colour image for png/jpg names and a
// text placeholder for everything else.
func sampleFile(name string, seed int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	fill := palette[seed%len(palette)]
	for y := range 48 {
		for x := range 64 {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	switch path.Ext(name) {
	case ".png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
			return nil, err
		}
	default:
		fmt.Fprintf(&buf, "placeholder for %s\n", name)
	}
	return buf.Bytes(), nil
}
