package common

type LabelKey string

func (l LabelKey) String() string {
	return string(l)
}

const (
	LabelKeyEnv     LabelKey = "env"
	LabelKeyFeature LabelKey = "feature"
	LabelKeyModule  LabelKey = "module"
	LabelKeyService LabelKey = "service"
)
