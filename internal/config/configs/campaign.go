package configs

// Campaign holds fundraising policy knobs. MinTarget is the smallest
// acceptable funding target in integer units. MaxShareBps caps one
// contributor's cumulative share of the target in basis points; zero
// disables the cap.
type Campaign struct {
	MinTarget   int64 `env:"MIN_TARGET" envDefault:"1"`
	MaxShareBps int64 `env:"MAX_SHARE_BPS" envDefault:"0"`
}
