package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Remind  func(RemindArgs) (Result, error)
	Trash   func(TrashArgs) (Result, error)
	Restore func(RestoreArgs) (Result, error)
	Show    func(ShowArgs) (Result, error)
	Preset  func(PresetArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeRemind:
		if handlers.Remind == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "remind handler not configured"}
		}
		return handlers.Remind(*cmd.Remind)
	case TypeTrash:
		if handlers.Trash == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "trash handler not configured"}
		}
		return handlers.Trash(*cmd.Trash)
	case TypeRestore:
		if handlers.Restore == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "restore handler not configured"}
		}
		return handlers.Restore(*cmd.Restore)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypePreset:
		if handlers.Preset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "preset handler not configured"}
		}
		return handlers.Preset(*cmd.Preset)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
