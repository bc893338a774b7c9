package domain

// Configuration is the fully assembled machine description.
// Commands keep their input order; Alphabet is sorted and deduplicated;
// Tape is the literal initial tape content as written in the source.
type Configuration struct {
	Commands []Command `json:"commands" yaml:"commands"`
	Alphabet string    `json:"alphabet" yaml:"alphabet"`
	Tape     string    `json:"tape" yaml:"tape"`
}

// Builder accumulates parsed directives into a Configuration.
//
// Commands are append-only (duplicates are kept), while alphabet and tape
// follow a last-declaration-wins rule. Build refuses to produce a
// Configuration until both alphabet and tape have been declared.
type Builder struct {
	commands []Command
	alphabet string
	tape     string
	hasAlpha bool
	hasTape  bool
}

// NewBuilder creates an empty configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddCommand appends a command in encounter order.
// No deduplication or conflict detection is applied; two rules for the
// same (state, reading_char) pair are both kept.
func (b *Builder) AddCommand(cmd Command) *Builder {
	b.commands = append(b.commands, cmd)
	return b
}

// SetAlphabet records the alphabet, replacing any earlier declaration.
func (b *Builder) SetAlphabet(alphabet string) *Builder {
	b.alphabet = alphabet
	b.hasAlpha = true
	return b
}

// SetTape records the tape, replacing any earlier declaration.
func (b *Builder) SetTape(tape string) *Builder {
	b.tape = tape
	b.hasTape = true
	return b
}

// Build finalizes the configuration.
// It fails with ErrMissingAlphabet, then ErrMissingTape, when the source
// never declared the corresponding directive. The alphabet check runs
// first and a failure stops the build immediately.
func (b *Builder) Build() (*Configuration, error) {
	if !b.hasAlpha {
		return nil, ErrMissingAlphabet
	}
	if !b.hasTape {
		return nil, ErrMissingTape
	}
	cfg := &Configuration{
		Commands: b.commands,
		Alphabet: b.alphabet,
		Tape:     b.tape,
	}
	if cfg.Commands == nil {
		cfg.Commands = []Command{}
	}
	return cfg, nil
}
