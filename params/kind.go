package params

// Kind tags the concrete variant of a parameter.
type Kind int

const (
	KindFile Kind = iota
	KindEnv
	KindValue
	KindStdIn
	KindStdOut
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindEnv:
		return "env"
	case KindValue:
		return "val"
	case KindStdIn:
		return "stdin"
	case KindStdOut:
		return "stdout"
	default:
		return "unknown"
	}
}
