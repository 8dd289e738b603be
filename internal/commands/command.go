package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeRemind  Type = "remind"
	TypeTrash   Type = "trash"
	TypeRestore Type = "restore"
	TypeShow    Type = "show"
	TypePreset  Type = "preset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Name string
	When string
}

type RemindArgs struct {
	Target    string
	Cycle     string
	Timings   string
	TimeOfDay string
}

type TrashArgs struct {
	Target string
}

type RestoreArgs struct {
	Target string
}

type ShowArgs struct {
	Subject  string
	Category string
}

type PresetArgs struct {
	Name string
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Remind  *RemindArgs
	Trash   *TrashArgs
	Restore *RestoreArgs
	Show    *ShowArgs
	Preset  *PresetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeRemind:
		return parseRemind(input, args)
	case TypeTrash:
		return parseTrash(input, args)
	case TypeRestore:
		return parseRestore(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypePreset:
		return parsePreset(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd splits "add <name> on <date>" at the last " on " so event names
// containing the word keep working ("add party on the boat on 2026-07-04").
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name and a date: add <name> on <date>"}
	}
	rest := strings.TrimSpace(strings.Join(args, " "))
	idx := strings.LastIndex(strings.ToLower(rest), " on ")
	if idx < 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a date: add <name> on <date>"}
	}
	name := strings.TrimSpace(rest[:idx])
	when := strings.TrimSpace(rest[idx+len(" on "):])
	if name == "" || when == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires both a name and a date"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name, When: when}}, nil
}

func parseRemind(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "remind requires a target and a cycle (or off)"}
	}
	out := RemindArgs{
		Target: strings.ToLower(args[0]),
		Cycle:  strings.ToLower(args[1]),
	}
	if len(args) > 2 {
		out.Timings = strings.TrimSpace(args[2])
	}
	if len(args) > 3 {
		out.TimeOfDay = strings.TrimSpace(args[3])
	}
	return Command{Type: TypeRemind, Raw: raw, Remind: &out}, nil
}

func parseTrash(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "trash requires a target"}
	}
	return Command{Type: TypeTrash, Raw: raw, Trash: &TrashArgs{Target: strings.ToLower(args[0])}}, nil
}

func parseRestore(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "restore requires a target"}
	}
	return Command{Type: TypeRestore, Raw: raw, Restore: &RestoreArgs{Target: strings.ToLower(args[0])}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	category := ""
	for _, arg := range args[1:] {
		if strings.HasPrefix(strings.ToLower(arg), "category:") {
			category = strings.TrimSpace(strings.TrimPrefix(arg, "category:"))
		}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject, Category: category}}, nil
}

func parsePreset(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "preset requires a holiday name"}
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypePreset, Raw: raw, Preset: &PresetArgs{Name: name}}, nil
}
