package users

import "unicode/utf16"

var avatarPalette = []string{"#c81020", "#1a8a3e", "#2563eb", "#9333ea", "#ea580c", "#0891b2", "#be185d"}

// AvatarColor picks a palette color from a rolling hash of the name. The hash
// runs over UTF-16 code units with 32-bit shift semantics so existing accounts
// keep the color they were first shown with.
func AvatarColor(name string) string {
	var h int64
	for _, unit := range utf16.Encode([]rune(name)) {
		shifted := int64(int32(uint32(h) << 5))
		h = int64(unit) + shifted - h
	}
	if h < 0 {
		h = -h
	}
	return avatarPalette[h%int64(len(avatarPalette))]
}
