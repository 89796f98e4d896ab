package persistent

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

var errInvalidPadding = errors.New("invalid padding, wrong encryption key?")

// encrypt seals text with AES-CFB. The random IV is prepended to the result.
func encrypt(key []byte, text string) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}

	msg := pad([]byte(text))
	ciphertext := make([]byte, aes.BlockSize+len(msg))
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("read iv: %w", err)
	}

	cipher.NewCFBEncrypter(block, iv).XORKeyStream(ciphertext[aes.BlockSize:], msg)
	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

func decrypt(key []byte, text string) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}

	decoded, err := base64.URLEncoding.DecodeString(text)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(decoded) < 2*aes.BlockSize || len(decoded)%aes.BlockSize != 0 {
		return "", fmt.Errorf("invalid ciphertext length %d", len(decoded))
	}

	iv := decoded[:aes.BlockSize]
	msg := decoded[aes.BlockSize:]
	cipher.NewCFBDecrypter(block, iv).XORKeyStream(msg, msg)

	unpadded, err := unpad(msg)
	if err != nil {
		return "", err
	}
	return string(unpadded), nil
}

func pad(src []byte) []byte {
	padding := aes.BlockSize - len(src)%aes.BlockSize
	return append(src, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func unpad(src []byte) ([]byte, error) {
	length := len(src)
	if length == 0 {
		return nil, errInvalidPadding
	}
	padding := int(src[length-1])
	if padding == 0 || padding > aes.BlockSize || padding > length {
		return nil, errInvalidPadding
	}
	return src[:length-padding], nil
}
