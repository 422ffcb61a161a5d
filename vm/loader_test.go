package vm

import "testing"

func TestDecodeImageLittleEndian(t *testing.T) {
	words, err := DecodeImage([]byte{0x01, 0x00, 0xff, 0x7f})
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, len(words) == 2, "expected 2 words, got %d", len(words))
	assert(t, words[0] == 1, "expected word 0 to be 1, got %d", words[0])
	assert(t, words[1] == 0x7fff, "expected word 1 to be 0x7fff, got %d", words[1])
}

func TestDecodeImageRejectsOddLength(t *testing.T) {
	_, err := DecodeImage([]byte{0x01})
	assert(t, err != nil, "expected fault on odd-length image")
}

func TestDecodeImageRejectsEmpty(t *testing.T) {
	_, err := DecodeImage(nil)
	assert(t, err != nil, "expected fault on empty image")
}

func TestLoadImageMissingFileFaults(t *testing.T) {
	_, err := LoadImage("/nonexistent/path/to/image.bin")
	assert(t, err != nil, "expected fault on missing file")
	assert(t, ExitCode(err) == 7, "expected load exit code, got %d", ExitCode(err))
}
