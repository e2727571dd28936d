package domain

// Status is the lifecycle state shared by campaigns, ad groups and keywords.
// ARCHIVED is terminal: it is only entered through delete and never left.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusPaused   Status = "PAUSED"
	StatusArchived Status = "ARCHIVED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusArchived:
		return true
	}
	return false
}

// MatchType controls how a keyword matches shopper search terms.
type MatchType string

const (
	MatchBroad  MatchType = "BROAD"
	MatchPhrase MatchType = "PHRASE"
	MatchExact  MatchType = "EXACT"
)

func (m MatchType) Valid() bool {
	switch m {
	case MatchBroad, MatchPhrase, MatchExact:
		return true
	}
	return false
}
