package props

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for mapper events. Event fields never carry member values.
var (
	SignalMapperCreated     = capitan.NewSignal("props.mapper.created", "Mapper instantiated")
	SignalExportStart       = capitan.NewSignal("props.export.start", "Export operation beginning")
	SignalExportComplete    = capitan.NewSignal("props.export.complete", "Export operation finished")
	SignalImportStart       = capitan.NewSignal("props.import.start", "Import operation beginning")
	SignalImportComplete    = capitan.NewSignal("props.import.complete", "Import operation finished")
	SignalMarshalStart      = capitan.NewSignal("props.marshal.start", "Marshal operation beginning")
	SignalMarshalComplete   = capitan.NewSignal("props.marshal.complete", "Marshal operation finished")
	SignalUnmarshalStart    = capitan.NewSignal("props.unmarshal.start", "Unmarshal operation beginning")
	SignalUnmarshalComplete = capitan.NewSignal("props.unmarshal.complete", "Unmarshal operation finished")
)

// Keys for typed event data.
var (
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyMemberCount    = capitan.NewIntKey("member_count")
	KeyEntryCount     = capitan.NewIntKey("entry_count")
	KeySensitiveCount = capitan.NewIntKey("sensitive_count")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
)

// emitMapperCreated emits an event when a mapper is created.
func emitMapperCreated(ctx context.Context, typeName string, members int) {
	capitan.Emit(ctx, SignalMapperCreated,
		KeyTypeName.Field(typeName),
		KeyMemberCount.Field(members),
	)
}

// emitExportStart emits an event when export begins.
func emitExportStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalExportStart, KeyTypeName.Field(typeName))
}

// emitExportComplete emits an event when export finishes.
func emitExportComplete(ctx context.Context, typeName string, duration time.Duration, entries, sensitive int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyEntryCount.Field(entries),
		KeySensitiveCount.Field(sensitive),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalExportComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalExportComplete, fields...)
	}
}

// emitImportStart emits an event when import begins.
func emitImportStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalImportStart, KeyTypeName.Field(typeName))
}

// emitImportComplete emits an event when import finishes.
func emitImportComplete(ctx context.Context, typeName string, duration time.Duration, entries int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyEntryCount.Field(entries),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalImportComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalImportComplete, fields...)
	}
}

// emitMarshalStart emits an event when marshal begins.
func emitMarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalMarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitMarshalComplete emits an event when marshal finishes.
func emitMarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}

// emitUnmarshalStart emits an event when unmarshal begins.
func emitUnmarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalUnmarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitUnmarshalComplete emits an event when unmarshal finishes.
func emitUnmarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnmarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnmarshalComplete, fields...)
	}
}

// countSensitive returns how many entries carry sensitive values.
func countSensitive(c Collection) int {
	n := 0
	for _, e := range c {
		if e.Sensitive {
			n++
		}
	}
	return n
}
