package core

import (
	"encoding/base64"

	"github.com/docbridge/docbridge/pkg/errors"
)

// PlainTextDecoder returns encoded values unchanged. It suits
// development setups where credentials are stored in the clear.
type PlainTextDecoder struct{}

// DecodeValue implements SensitiveValueDecoder.
func (PlainTextDecoder) DecodeValue(encoded string) (string, error) {
	return encoded, nil
}

// Base64Decoder decodes values stored as standard base64.
type Base64Decoder struct{}

// DecodeValue implements SensitiveValueDecoder.
func (Base64Decoder) DecodeValue(encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeValidation, "sensitive value is not valid base64")
	}
	return string(decoded), nil
}
