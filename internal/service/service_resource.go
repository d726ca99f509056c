package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ametelin/fintrack/internal/logger"
	"github.com/ametelin/fintrack/internal/store"
	"github.com/ametelin/fintrack/models"
)

// ResourceSpec is the schema descriptor that turns the generic resource
// service into a concrete one: which fields are required at creation, how
// creation defaults are computed, and which columns an update touches.
type ResourceSpec[In any] struct {
	// Kind is the lowercase resource name used in logs.
	Kind string

	// ValidateCreate reports ErrMissingRequiredFields when a required field
	// is absent from the input.
	ValidateCreate func(in In) error

	// CreateFields converts a validated input into the column/value map of
	// a new record, applying kind-specific defaults. Ownership is not its
	// concern; the service forces user_id afterwards.
	CreateFields func(in In) map[string]any

	// UpdateFields converts an input into the column/value map of an
	// update, containing only the fields the client supplied.
	UpdateFields func(in In) map[string]any
}

// resourceService is the generic implementation of [ResourceService],
// instantiated once per resource kind with the matching repository and spec.
type resourceService[T models.Owned, In any] struct {
	repository store.ResourceRepository[T]
	spec       ResourceSpec[In]
	logger     *logger.Logger
}

// NewResourceService constructs a [ResourceService] from a repository and a
// schema descriptor.
func NewResourceService[T models.Owned, In any](repository store.ResourceRepository[T], spec ResourceSpec[In], logger *logger.Logger) ResourceService[T, In] {
	return &resourceService[T, In]{
		repository: repository,
		spec:       spec,
		logger:     logger,
	}
}

// checkOwnership is the ownership guard: a pure predicate comparing a
// record's owner with the authenticated caller. It is applied by every
// single-record operation, always after existence has been confirmed.
func checkOwnership(ownerID, callerID int64) error {
	if ownerID != callerID {
		return ErrNotResourceOwner
	}

	return nil
}

// List returns all records owned by callerID in the kind's sort order.
func (s *resourceService[T, In]) List(ctx context.Context, callerID int64) ([]T, error) {
	records, err := s.repository.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("listing %ss failed: %w", s.spec.Kind, err)
	}

	return records, nil
}

// Create validates the input, applies defaults, forces the owner to
// callerID and persists the record. Any owner value smuggled into the
// request body is ignored: user_id is set unconditionally here.
func (s *resourceService[T, In]) Create(ctx context.Context, callerID int64, in In) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if err := s.spec.ValidateCreate(in); err != nil {
		log.Error().Str("kind", s.spec.Kind).Err(err).Msg("invalid create payload")
		return zero, err
	}

	fields := s.spec.CreateFields(in)
	fields["user_id"] = callerID

	record, err := s.repository.Create(ctx, fields)
	if err != nil {
		return zero, fmt.Errorf("creating %s failed: %w", s.spec.Kind, err)
	}

	return record, nil
}

// Get returns the record with the given id if callerID owns it. Existence
// is checked before ownership: an absent record reports not-found to any
// caller, while an existing foreign record reports ErrNotResourceOwner.
func (s *resourceService[T, In]) Get(ctx context.Context, callerID int64, id int64) (T, error) {
	var zero T

	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if err := checkOwnership(record.Owner(), callerID); err != nil {
		return zero, err
	}

	return record, nil
}

// Update applies only the supplied fields of in to the record. Omitted
// fields are excluded from the SET clause entirely, so their stored values
// survive untouched. An update that supplies no fields returns the current
// record unchanged.
func (s *resourceService[T, In]) Update(ctx context.Context, callerID int64, id int64, in In) (T, error) {
	var zero T

	current, err := s.Get(ctx, callerID, id)
	if err != nil {
		return zero, err
	}

	changes := s.spec.UpdateFields(in)
	if len(changes) == 0 {
		return current, nil
	}

	updated, err := s.repository.Update(ctx, id, changes)
	if err != nil {
		return zero, fmt.Errorf("updating %s failed: %w", s.spec.Kind, err)
	}

	return updated, nil
}

// Delete removes the record permanently after the same existence and
// ownership checks as Get.
func (s *resourceService[T, In]) Delete(ctx context.Context, callerID int64, id int64) error {
	if _, err := s.Get(ctx, callerID, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting %s failed: %w", s.spec.Kind, err)
	}

	return nil
}

// requiredField pairs a field name with whether the client supplied it.
type requiredField struct {
	name    string
	present bool
}

// requireFields reports ErrMissingRequiredFields naming every absent field,
// so a client can correct all of them in one round trip.
func requireFields(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}

	return nil
}
