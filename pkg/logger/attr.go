package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records the write operation under the key "operation".
func Operation(op string) slog.Attr {
	return slog.String("operation", op)
}

// OperationID records the write operation identifier under the key
// "operation_id". If id is nil, it returns an empty Attr.
func OperationID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("operation_id", id)
}

// DocumentPath records the document path under the key "document_path".
func DocumentPath(path string) slog.Attr {
	return slog.String("document_path", path)
}

// Collection records the target collection name under the key "collection".
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}
