package discord

import "github.com/bwmarrin/snowflake"

// Epoch is the platform's snowflake epoch in Unix milliseconds.
const Epoch int64 = 1420070400000

// timestampShift is the bit offset of the millisecond timestamp in an ID.
const timestampShift = 22

// CreatedAt returns the creation time embedded in id, in Unix seconds. The
// library's package-level epoch is left untouched.
func CreatedAt(id snowflake.ID) int64 {
	return (int64(id)>>timestampShift + Epoch) / 1000
}
