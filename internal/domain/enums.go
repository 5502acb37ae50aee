package domain

// NotificationKind classifies a transient message shown to the reader.
type NotificationKind string

const (
	NotificationError   NotificationKind = "error"
	NotificationSuccess NotificationKind = "success"
	NotificationInfo    NotificationKind = "info"
)

func (k NotificationKind) String() string { return string(k) }

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationError, NotificationSuccess, NotificationInfo:
		return true
	}
	return false
}

// Sticky reports whether notifications of this kind stay until dismissed.
func (k NotificationKind) Sticky() bool { return k == NotificationError }

// LLMProvider names a supported language-model backend.
type LLMProvider string

const (
	LLMProviderOpenAI    LLMProvider = "openai"
	LLMProviderAnthropic LLMProvider = "anthropic"
)

func (p LLMProvider) String() string { return string(p) }

func (p LLMProvider) IsValid() bool {
	switch p {
	case LLMProviderOpenAI, LLMProviderAnthropic:
		return true
	}
	return false
}

// DefaultModel is the model used when none is configured.
func (p LLMProvider) DefaultModel() string {
	if p == LLMProviderAnthropic {
		return "claude-3-5-haiku-latest"
	}
	return "gpt-4o-mini"
}

// MaxTemperature is the highest sampling temperature the provider accepts.
func (p LLMProvider) MaxTemperature() float64 {
	if p == LLMProviderAnthropic {
		return 1
	}
	return 2
}

// StoreDriver names a supported saved-text slot backend.
type StoreDriver string

const (
	StoreDriverFile     StoreDriver = "file"
	StoreDriverSQLite   StoreDriver = "sqlite"
	StoreDriverPostgres StoreDriver = "postgres"
)

func (d StoreDriver) String() string { return string(d) }

func (d StoreDriver) IsValid() bool {
	switch d {
	case StoreDriverFile, StoreDriverSQLite, StoreDriverPostgres:
		return true
	}
	return false
}
