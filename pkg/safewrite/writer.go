package safewrite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/docsafe-go/docsafe/pkg/logger"
	"github.com/docsafe-go/docsafe/pkg/validation"
)

// Writer binds the validation engine to a MongoDB collection. Every write
// passes through validation first; a refused write never touches the store.
type Writer struct {
	coll *mongo.Collection
	log  *slog.Logger
	opts validation.Options
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(log *slog.Logger) WriterOption {
	return func(w *Writer) {
		if log != nil {
			w.log = log
		}
	}
}

// WithValidationOptions replaces the default validation policy.
func WithValidationOptions(opts validation.Options) WriterOption {
	return func(w *Writer) { w.opts = opts }
}

// NewWriter creates a safe writer over the given collection.
func NewWriter(coll *mongo.Collection, opts ...WriterOption) *Writer {
	w := &Writer{
		coll: coll,
		log:  slog.New(slog.DiscardHandler),
		opts: validation.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Create validates the whole document and inserts it. The write is refused
// when validation fails or when the document root is not an object.
func (w *Writer) Create(ctx context.Context, id string, doc map[string]any) (validation.Result, error) {
	opID := uuid.NewString()
	res := validation.ValidateDocument(doc, w.docPath(id), validation.OperationCreate, w.opts)
	if !res.IsValid {
		w.logRefused(ctx, opID, res)
		return res, refusal(res)
	}

	clean, ok := res.SanitizedData.(map[string]any)
	if !ok {
		return res, fmt.Errorf("%w: document root must be an object", ErrUnsafeWrite)
	}
	if len(clean) == 0 {
		return res, ErrNothingToWrite
	}

	payload := bson.M{"_id": id}
	for k, v := range clean {
		payload[k] = v
	}
	if _, err := w.coll.InsertOne(ctx, payload); err != nil {
		return res, err
	}

	w.log.InfoContext(ctx, "document created",
		logger.OperationID(opID),
		logger.Operation(string(validation.OperationCreate)),
		logger.DocumentPath(res.Path),
		slog.Int("fields", len(clean)),
		slog.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}

// Update validates each dotted field path independently and applies the
// surviving fields with a single $set. In lenient mode invalid fields are
// skipped and the rest is written; in strict mode any error refuses the whole
// update.
func (w *Writer) Update(ctx context.Context, id string, fields map[string]any) (validation.Result, error) {
	opID := uuid.NewString()
	upd := PrepareSafeUpdate(fields, w.opts)
	upd.Validation.Path = w.docPath(id)

	if !upd.Validation.IsValid && w.opts.Strict {
		w.logRefused(ctx, opID, upd.Validation)
		return upd.Validation, refusal(upd.Validation)
	}
	if len(upd.Data) == 0 {
		w.logRefused(ctx, opID, upd.Validation)
		return upd.Validation, ErrNothingToWrite
	}

	set := make(bson.M, len(upd.Data))
	for fp, v := range upd.Data {
		set[fp] = v
	}
	if _, err := w.coll.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return upd.Validation, err
	}

	w.log.InfoContext(ctx, "document updated",
		logger.OperationID(opID),
		logger.Operation(string(validation.OperationUpdate)),
		logger.DocumentPath(upd.Validation.Path),
		slog.Int("fields", len(upd.Data)),
		slog.Int("skipped", len(fields)-len(upd.Data)),
		slog.Int("warnings", len(upd.Validation.Warnings)),
	)
	return upd.Validation, nil
}

// Delete removes the document. Deletes carry no payload, so validation is
// trivially passing; a result is still returned for uniform reporting.
func (w *Writer) Delete(ctx context.Context, id string) (validation.Result, error) {
	opID := uuid.NewString()
	res := validation.Result{
		IsValid:   true,
		Operation: validation.OperationDelete,
		Path:      w.docPath(id),
	}

	if _, err := w.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return res, err
	}

	w.log.InfoContext(ctx, "document deleted",
		logger.OperationID(opID),
		logger.Operation(string(validation.OperationDelete)),
		logger.DocumentPath(res.Path),
	)
	return res, nil
}

func (w *Writer) docPath(id string) string {
	return w.coll.Name() + "/" + id
}

func (w *Writer) logRefused(ctx context.Context, opID string, res validation.Result) {
	w.log.WarnContext(ctx, "write refused by validation",
		logger.OperationID(opID),
		logger.Operation(string(res.Operation)),
		logger.DocumentPath(res.Path),
		slog.Int("errors", len(res.Errors)),
		slog.Int("warnings", len(res.Warnings)),
	)
}

func refusal(res validation.Result) error {
	return fmt.Errorf("%w: %s", ErrUnsafeWrite, strings.Join(res.Errors, "; "))
}
