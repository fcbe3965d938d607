package model

// Tag is a forum tag available on a channel.
type Tag struct {
	ID   string
	Name string
}

// Thread is a newly created forum thread.
type Thread struct {
	ID        string
	ChannelID string
	Name      string
	TagIDs    []string
}
