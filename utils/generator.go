package utils

import (
	"math/rand"
)

const whiteboardIDLength = 12
const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateWhiteboardID produces the room identifier handed to the whiteboard
// embed when a booking is confirmed. The top-level rand functions are locked,
// so concurrent captures are safe.
func GenerateWhiteboardID() string {
	b := make([]byte, whiteboardIDLength)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return "wb-" + string(b)
}
