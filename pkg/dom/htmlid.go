package dom

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// GenerateHTMLID returns an id for element attributes: the base-36
// millisecond timestamp followed by base-36 random digits.
// Collisions are possible but negligible for ids scoped to one page.
func GenerateHTMLID() string {
	ms := time.Now().UnixMilli()

	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// clock fallback
		binary.BigEndian.PutUint64(b[:], uint64(time.Now().UnixNano()))
	}

	return strconv.FormatInt(ms, 36) + strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
}
