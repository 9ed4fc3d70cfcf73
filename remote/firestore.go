package remote

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"path"
	"sort"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/firestore/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Firestore implements Store on top of Cloud Firestore's REST API.
type Firestore struct {
	svc    *firestore.Service
	parent string // projects/{p}/databases/{d}/documents
}

var _ Store = (*Firestore)(nil)

// NewFirestore builds a Firestore-backed store. When tokenSource is nil the
// application default credentials are used.
func NewFirestore(ctx context.Context, projectID, database string, tokenSource oauth2.TokenSource) (*Firestore, error) {
	if database == "" {
		database = "(default)"
	}

	if tokenSource == nil {
		ts, err := google.DefaultTokenSource(ctx, firestore.DatastoreScope)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve credentials: %w", err)
		}
		tokenSource = ts
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	svc, err := firestore.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}

	return &Firestore{
		svc:    svc,
		parent: fmt.Sprintf("projects/%s/databases/%s/documents", projectID, database),
	}, nil
}

func (f *Firestore) docName(collection, id string) string {
	return f.parent + "/" + collection + "/" + id
}

func (f *Firestore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	doc := &firestore.Document{Fields: toValues(fields)}

	created, err := f.svc.Projects.Databases.Documents.
		CreateDocument(f.parent, collection, doc).
		Context(ctx).
		Do()
	if err != nil {
		return "", mapError(err)
	}

	return path.Base(created.Name), nil
}

func (f *Firestore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	doc, err := f.svc.Projects.Databases.Documents.
		Get(f.docName(collection, id)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError(err)
	}

	return fromValues(doc.Fields), nil
}

func (f *Firestore) List(ctx context.Context, collection string) ([]Document, error) {
	var docs []Document
	pageToken := ""

	for {
		call := f.svc.Projects.Databases.Documents.
			List(f.parent, collection).
			PageSize(300).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, mapError(err)
		}

		for _, doc := range resp.Documents {
			docs = append(docs, Document{
				ID:     path.Base(doc.Name),
				Fields: fromValues(doc.Fields),
			})
		}

		if resp.NextPageToken == "" {
			return docs, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (f *Firestore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	doc := &firestore.Document{Fields: toValues(fields)}

	// The update mask limits the patch to the provided fields; the existence
	// precondition turns a missing document into a 404 instead of an upsert.
	paths := make([]string, 0, len(fields))
	for key := range fields {
		paths = append(paths, key)
	}
	sort.Strings(paths)

	_, err := f.svc.Projects.Databases.Documents.
		Patch(f.docName(collection, id), doc).
		UpdateMaskFieldPaths(paths...).
		CurrentDocumentExists(true).
		Context(ctx).
		Do()
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, collection, id string) error {
	_, err := f.svc.Projects.Databases.Documents.
		Delete(f.docName(collection, id)).
		CurrentDocumentExists(true).
		Context(ctx).
		Do()
	if err != nil {
		return mapError(err)
	}
	return nil
}

// mapError folds transport and service failures into the store's two-error
// taxonomy.
func mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// ==================== FIELD CODEC ====================

func toValues(fields map[string]any) map[string]firestore.Value {
	values := make(map[string]firestore.Value, len(fields))
	for key, v := range fields {
		values[key] = toValue(v)
	}
	return values
}

func toValue(v any) firestore.Value {
	switch val := v.(type) {
	case nil:
		return firestore.Value{NullValue: "NULL_VALUE", ForceSendFields: []string{"NullValue"}}
	case string:
		return firestore.Value{StringValue: val, ForceSendFields: []string{"StringValue"}}
	case bool:
		return firestore.Value{BooleanValue: val, ForceSendFields: []string{"BooleanValue"}}
	case float64:
		// JSON decoding hands every number over as float64; keep integral
		// values as Firestore integers so ordering and equality behave.
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return firestore.Value{IntegerValue: int64(val), ForceSendFields: []string{"IntegerValue"}}
		}
		return firestore.Value{DoubleValue: val, ForceSendFields: []string{"DoubleValue"}}
	case int:
		return firestore.Value{IntegerValue: int64(val), ForceSendFields: []string{"IntegerValue"}}
	case int64:
		return firestore.Value{IntegerValue: val, ForceSendFields: []string{"IntegerValue"}}
	case map[string]any:
		return firestore.Value{MapValue: &firestore.MapValue{Fields: toValues(val)}}
	case []any:
		values := make([]*firestore.Value, len(val))
		for i, item := range val {
			value := toValue(item)
			values[i] = &value
		}
		return firestore.Value{ArrayValue: &firestore.ArrayValue{Values: values}}
	default:
		return firestore.Value{StringValue: fmt.Sprintf("%v", val), ForceSendFields: []string{"StringValue"}}
	}
}

func fromValues(values map[string]firestore.Value) map[string]any {
	fields := make(map[string]any, len(values))
	for key, value := range values {
		fields[key] = fromValue(value)
	}
	return fields
}

func fromValue(value firestore.Value) any {
	switch {
	case value.NullValue != "":
		return nil
	case value.MapValue != nil:
		return fromValues(value.MapValue.Fields)
	case value.ArrayValue != nil:
		items := make([]any, 0, len(value.ArrayValue.Values))
		for _, v := range value.ArrayValue.Values {
			if v == nil {
				items = append(items, nil)
				continue
			}
			items = append(items, fromValue(*v))
		}
		return items
	case value.TimestampValue != "":
		return value.TimestampValue
	case value.StringValue != "":
		return value.StringValue
	case value.BooleanValue:
		return true
	case value.IntegerValue != 0:
		return value.IntegerValue
	case value.DoubleValue != 0:
		return value.DoubleValue
	default:
		// All-zero scalars ("", 0, false) are indistinguishable here; nil
		// decodes back into the record's zero value either way.
		return nil
	}
}
