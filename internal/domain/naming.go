package domain

// PlaceholderSessionName is the name a chat session carries until its first
// message arrives.
const PlaceholderSessionName = "New conversation"

const sessionNameLimit = 30

// SessionNameFromMessage derives a session display name from the first
// message: the first 30 characters of the content, with an ellipsis marker
// when truncated. Counts runes so multi-byte content is not cut mid-character.
func SessionNameFromMessage(content string) string {
	runes := []rune(content)
	if len(runes) <= sessionNameLimit {
		return content
	}
	return string(runes[:sessionNameLimit]) + "..."
}
