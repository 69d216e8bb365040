package encryptink

import (
	"encoding/json"
	"fmt"
)

// Content constructors build the JSON documents carried in a message
// value's content field.

// CreateTextContent serializes a text content payload.
func CreateTextContent(c TextContent) (string, error) {
	if c.Text == "" {
		return "", fmt.Errorf("%w: empty text", ErrInvalidMessage)
	}

	b, err := json.Marshal(&c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateImageContent serializes an image content payload.
func CreateImageContent(c MediaContent) (string, error) {
	if c.URI == "" {
		return "", fmt.Errorf("%w: empty uri", ErrInvalidMessage)
	}
	if c.Metadata.Filename == "" || c.Metadata.MimeType == "" {
		return "", fmt.Errorf("%w: incomplete media metadata", ErrInvalidMessage)
	}

	b, err := json.Marshal(&c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateVideoContent serializes a video content payload.
func CreateVideoContent(c MediaContent) (string, error) {
	return CreateImageContent(c)
}

// CreateAudioContent serializes an audio content payload.
func CreateAudioContent(c MediaContent) (string, error) {
	return CreateImageContent(c)
}

// CreateFileContent serializes a file content payload.
func CreateFileContent(c MediaContent) (string, error) {
	return CreateImageContent(c)
}
