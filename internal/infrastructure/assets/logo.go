package assets

import (
	"bytes"
	"image/png"
	"log"
	"os"
)

// LoadLogo reads and validates the PNG logo asset.
//
// A missing or undecodable file is non-fatal: the caller gets nil and the
// receipt renders without the visual element. Validating here keeps a bad
// asset from poisoning the PDF engine mid-document.
func LoadLogo(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[receipt][assets] logo unavailable path=%s err=%v", path, err)
		return nil
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		log.Printf("[receipt][assets] logo is not a decodable PNG path=%s err=%v", path, err)
		return nil
	}
	return data
}
