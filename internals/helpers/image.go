package helper

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Batas ukuran payload gambar inline (hasil decode base64).
const MaxImageBytes = 2 << 20 // 2 MiB

// ValidateImageRef memeriksa field gambar sebelum disimpan.
// Nilai yang diterima: kosong, URL http(s), atau data URI base64
// dengan MIME image/* dan ukuran decode maksimal 2 MiB.
// Validasi ulang di sisi server: API adalah batas kepercayaan,
// bukan form di browser.
func ValidateImageRef(ref string) error {
	if ref == "" {
		return nil
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return nil
	}
	if !strings.HasPrefix(ref, "data:") {
		return fmt.Errorf("format gambar tidak dikenal, gunakan URL atau data URI")
	}
	if !strings.HasPrefix(ref, "data:image/") {
		return fmt.Errorf("file harus bertipe image/*")
	}

	idx := strings.Index(ref, ";base64,")
	if idx < 0 {
		return fmt.Errorf("data URI gambar harus ber-encoding base64")
	}
	payload := ref[idx+len(";base64,"):]

	// Tolak dulu dari panjang encoded sebelum repot decode
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes+3 {
		return fmt.Errorf("ukuran gambar melebihi 2MB")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("payload base64 tidak valid")
	}
	if len(raw) > MaxImageBytes {
		return fmt.Errorf("ukuran gambar melebihi 2MB")
	}
	return nil
}
