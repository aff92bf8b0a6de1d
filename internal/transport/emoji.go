package transport

// Discord's keycap emojis are a digit followed by U+20E3. The emoji picker
// inserts a variation selector (U+FE0F) between the two; reactions arrive in
// both forms. Voting supports options 1 through 9.

const MaxReactionOptions = 9

// NumberEmoji returns the keycap emoji for a 1-based option position.
func NumberEmoji(position int) string {
	if position < 1 || position > MaxReactionOptions {
		return ""
	}
	return string(rune('0'+position)) + "⃣"
}

// EmojiNumber maps a keycap emoji back to its option position, or 0 when the
// emoji is not a supported number. The variation selector is optional.
func EmojiNumber(emoji string) int {
	runes := []rune(emoji)
	if len(runes) < 2 || runes[0] < '1' || runes[0] > '9' {
		return 0
	}

	rest := runes[1:]
	if rest[0] == '\ufe0f' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '⃣' {
		return 0
	}

	return int(runes[0] - '0')
}
