package domain

import "strings"

// MakeProgram is the build tool makerun dispatches to.
const MakeProgram = "make"

// Make variable names set on the command line.
const (
	BinPathVar  = "BIN_PATH"
	QEMUArgsVar = "QEMU_ARGS"
)

// Variable is a NAME=value assignment passed to make on its command line.
type Variable struct {
	Name  string
	Value string
	// Quoted renders the value in double quotes in the display line.
	Quoted bool
}

// String renders the assignment the way it appears in the display line.
func (v Variable) String() string {
	if v.Quoted {
		return v.Name + `="` + v.Value + `"`
	}
	return v.Name + "=" + v.Value
}

// arg renders the assignment as a single argv element.
func (v Variable) arg() string {
	return v.Name + "=" + v.Value
}

// MakeCommand is a make invocation composed from an Invocation.
type MakeCommand struct {
	Program   string
	Target    string
	Variables []Variable
}

// NewMakeCommand composes the make command for inv.
// BIN_PATH is always set; QEMU_ARGS is added unless inv names a test binary.
func NewMakeCommand(inv Invocation) MakeCommand {
	cmd := MakeCommand{
		Program: MakeProgram,
		Target:  inv.Target,
		Variables: []Variable{
			{Name: BinPathVar, Value: inv.BinPath},
		},
	}

	if !inv.IsTestBinary() {
		cmd.Variables = append(cmd.Variables, Variable{
			Name:   QEMUArgsVar,
			Value:  DefaultQEMUArgs(),
			Quoted: true,
		})
	}

	return cmd
}

// Argv returns the argument vector used to start the process.
// Each variable is one element, so values are never split or interpreted by a shell.
func (c MakeCommand) Argv() []string {
	argv := make([]string, 0, len(c.Variables)+2)
	argv = append(argv, c.Program, c.Target)
	for _, v := range c.Variables {
		argv = append(argv, v.arg())
	}
	return argv
}

// String returns the command line printed before execution.
func (c MakeCommand) String() string {
	parts := make([]string, 0, len(c.Variables)+2)
	parts = append(parts, c.Program, c.Target)
	for _, v := range c.Variables {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, " ")
}

// HasVariable reports whether the command sets the named variable.
func (c MakeCommand) HasVariable(name string) bool {
	for _, v := range c.Variables {
		if v.Name == name {
			return true
		}
	}
	return false
}
