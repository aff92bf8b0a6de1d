package transport

import "time"

// SendTemporary sends a message and deletes it again after the timeout. The
// deletion runs in the background; a message already deleted by someone else
// is fine.
func SendTemporary(messenger Messenger, channelID, content string, timeout time.Duration) (string, error) {
	messageID, err := messenger.SendMessage(channelID, content)
	if err != nil {
		return "", err
	}

	DeleteLater(messenger, channelID, messageID, timeout)
	return messageID, nil
}

// DeleteLater deletes a message after the timeout, tolerating its absence.
func DeleteLater(messenger Messenger, channelID, messageID string, timeout time.Duration) {
	time.AfterFunc(timeout, func() {
		_ = messenger.DeleteMessage(channelID, messageID)
	})
}
