// Package qrcode renders plain PNG QR codes for event links.
package qrcode

import "github.com/skip2/go-qrcode"

const defaultSize = 512

// Generate encodes content into a PNG QR code.
func Generate(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, defaultSize)
}
