package feed

import "time"

// FeedTypeAtom 是本服务唯一输出的 Feed 格式。
const FeedTypeAtom = "atom_1.0"

// Link 是 Feed 或条目上的一个链接。
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
}

// TextContent 是带媒体类型的文本内容。
type TextContent struct {
	Type string `json:"type"`
	Body string `json:"body"`
}

// Entry 是 Feed 中的一个条目。
type Entry struct {
	Title     string      `json:"title"`
	Link      Link        `json:"link"`
	Summary   TextContent `json:"summary"`
	Created   time.Time   `json:"created"`
	Updated   time.Time   `json:"updated"`
	Published time.Time   `json:"published"`
}

// Feed 是一个完整的 Atom Feed。
type Feed struct {
	FeedType string    `json:"feedType"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Link     Link      `json:"link"`
	Updated  time.Time `json:"updated"`
	Entries  []*Entry  `json:"entries"`
}
