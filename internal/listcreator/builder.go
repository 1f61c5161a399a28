package listcreator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

// Validation messages surfaced to the user, in rule order.
const (
	MsgNameEmpty      = "The list name cannot be empty"
	MsgNameTooLong    = "The list name is too long (maximum 100 characters)"
	MsgNoCategory     = "A category must be selected"
	MsgNoLabeledSteps = "At least one step must have a name"
	MsgNameTaken      = "A list with this name already exists in the category"
)

// ErrMinimumSteps is returned by DeleteStep when the collection is already at
// the floor of one entry.
var ErrMinimumSteps = errors.New("a list must keep at least one step")

// ValidationError carries a user-facing message for a form rule violation.
// It blocks submission but is never treated as a failure of the app itself.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Builder manages the state of the list creator form: the ordered step
// collection, the name/category/description/common-tags fields, and the
// submission flow. All methods run on the UI dispatch goroutine; the builder
// does no locking of its own.
type Builder struct {
	creator ListCreator
	checker NameChecker

	steps       []*model.StepEntry
	name        string
	categoryID  int64
	description string
	commonTags  string

	onListCreated func(listName string, categoryID int64, itemIDs []int64)
}

// NewBuilder creates a builder holding a single empty step, keeping the
// at-least-one-step invariant from the start.
func NewBuilder(creator ListCreator, checker NameChecker) *Builder {
	b := &Builder{
		creator: creator,
		checker: checker,
	}
	b.AddStep()
	return b
}

// SetListCreatedCallback registers the listener notified after a successful
// submission with (list name, category ID, created item IDs).
func (b *Builder) SetListCreatedCallback(callback func(listName string, categoryID int64, itemIDs []int64)) {
	b.onListCreated = callback
}

// SetName sets the list name field.
func (b *Builder) SetName(name string) { b.name = name }

// Name returns the raw list name field.
func (b *Builder) Name() string { return b.name }

// SetCategoryID selects the category. Zero means no selection.
func (b *Builder) SetCategoryID(id int64) { b.categoryID = id }

// CategoryID returns the selected category, zero when none is selected.
func (b *Builder) CategoryID() int64 { return b.categoryID }

// SetDescription sets the optional description field.
func (b *Builder) SetDescription(desc string) { b.description = desc }

// SetCommonTags sets the raw comma-separated common tags field.
func (b *Builder) SetCommonTags(tags string) { b.commonTags = tags }

// Steps returns the ordered step collection. Callers must not reorder the
// returned slice; use MoveUp/MoveDown.
func (b *Builder) Steps() []*model.StepEntry {
	return b.steps
}

// StepCount returns the number of steps, labeled or not.
func (b *Builder) StepCount() int {
	return len(b.steps)
}

// LabeledStepCount returns the number of steps with a non-blank label.
func (b *Builder) LabeledStepCount() int {
	count := 0
	for _, e := range b.steps {
		if e.HasLabel() {
			count++
		}
	}
	return count
}

// AddStep appends a new empty step. It always succeeds.
func (b *Builder) AddStep() *model.StepEntry {
	entry := &model.StepEntry{Position: len(b.steps) + 1}
	b.steps = append(b.steps, entry)
	b.renumber()
	return entry
}

// DeleteStep removes the step at index i. Deleting below one step is
// rejected with ErrMinimumSteps and the collection is left unchanged.
func (b *Builder) DeleteStep(i int) error {
	if i < 0 || i >= len(b.steps) {
		return fmt.Errorf("step index out of range: %d", i)
	}
	if len(b.steps) <= 1 {
		return ErrMinimumSteps
	}

	b.steps = append(b.steps[:i], b.steps[i+1:]...)
	b.renumber()
	return nil
}

// SetStepLabel updates the label of the step at index i.
func (b *Builder) SetStepLabel(i int, label string) {
	if i < 0 || i >= len(b.steps) {
		return
	}
	b.steps[i].Label = label
}

// MoveUp swaps the step at index i with its upper neighbor. Moving the first
// step is a no-op, not an error.
func (b *Builder) MoveUp(i int) {
	if i <= 0 || i >= len(b.steps) {
		return
	}
	b.steps[i], b.steps[i-1] = b.steps[i-1], b.steps[i]
	b.renumber()
}

// MoveDown swaps the step at index i with its lower neighbor. Moving the last
// step is a no-op, not an error.
func (b *Builder) MoveDown(i int) {
	if i < 0 || i >= len(b.steps)-1 {
		return
	}
	b.steps[i], b.steps[i+1] = b.steps[i+1], b.steps[i]
	b.renumber()
}

// CanMoveUp reports whether the step at index i has an upper neighbor.
func (b *Builder) CanMoveUp(i int) bool {
	return i > 0 && i < len(b.steps)
}

// CanMoveDown reports whether the step at index i has a lower neighbor.
func (b *Builder) CanMoveDown(i int) bool {
	return i >= 0 && i < len(b.steps)-1
}

// renumber keeps positions dense and 1-based after any structural change.
func (b *Builder) renumber() {
	for i, e := range b.steps {
		e.Position = i + 1
	}
}

// Validate checks the form rules in order and returns a ValidationError for
// the first violated rule, or nil. It does not aggregate multiple errors.
func (b *Builder) Validate() error {
	name := strings.TrimSpace(b.name)
	if name == "" {
		return &ValidationError{Message: MsgNameEmpty}
	}
	// Characters, not bytes: accented names must not hit the limit early.
	if utf8.RuneCountInString(name) > model.MaxListNameLength {
		return &ValidationError{Message: MsgNameTooLong}
	}
	if b.categoryID == 0 {
		return &ValidationError{Message: MsgNoCategory}
	}
	if b.LabeledStepCount() == 0 {
		return &ValidationError{Message: MsgNoLabeledSteps}
	}
	return nil
}

// CheckNameUnique runs the advisory live uniqueness check. It returns a
// warning message to display next to the name field, or "" when the name
// looks fine. The result never blocks submission; the create call enforces
// uniqueness authoritatively.
func (b *Builder) CheckNameUnique(ctx context.Context) string {
	name := strings.TrimSpace(b.name)
	if name == "" {
		return MsgNameEmpty
	}
	if utf8.RuneCountInString(name) > model.MaxListNameLength {
		return MsgNameTooLong
	}
	if b.categoryID == 0 {
		return ""
	}

	unique, err := b.checker.IsListNameUnique(ctx, b.categoryID, name)
	if err != nil {
		// Advisory only; a failed lookup must not nag the user.
		log.Printf("Name uniqueness check failed: %v", err)
		return ""
	}
	if !unique {
		return MsgNameTaken
	}
	return ""
}

// ParseCommonTags splits a comma-separated tag string, trimming each tag and
// dropping empty entries. Order is preserved.
func ParseCommonTags(s string) []string {
	var tags []string
	for _, raw := range strings.Split(s, ",") {
		tag := strings.TrimSpace(raw)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// finalTags merges the auto tags with the parsed common tags. Auto tags come
// first: the fixed marker, then the list name (skipped when blank). Common
// tags are appended in input order with case-sensitive exact-match dedup.
func (b *Builder) finalTags() []string {
	tags := []string{model.AutoTagMarker}

	name := strings.TrimSpace(b.name)
	if name != "" {
		tags = append(tags, name)
	}

	for _, tag := range ParseCommonTags(b.commonTags) {
		duplicate := false
		for _, existing := range tags {
			if existing == tag {
				duplicate = true
				break
			}
		}
		if !duplicate {
			tags = append(tags, tag)
		}
	}
	return tags
}

// BuildPayload assembles the submission payload: only steps with a non-blank
// label are included, each with its own copy of the final tag sequence.
// Calling it twice without intervening mutation yields equal payloads.
func (b *Builder) BuildPayload() model.StepListPayload {
	tags := b.finalTags()

	var items []model.StepItem
	for _, e := range b.steps {
		if !e.HasLabel() {
			continue
		}
		itemTags := make([]string, len(tags))
		copy(itemTags, tags)
		items = append(items, model.StepItem{
			Label: strings.TrimSpace(e.Label),
			Tags:  itemTags,
		})
	}

	return model.StepListPayload{
		ListName:    strings.TrimSpace(b.name),
		CategoryID:  b.categoryID,
		Description: b.description,
		Steps:       items,
	}
}

// Submit validates the form and hands the payload to the list creation store.
// A ValidationError is returned untouched so the dialog can show it and stay
// open. Store failures (including recovered panics) come back as plain
// errors; on success the list-created callback fires and nil is returned so
// the dialog can close.
func (b *Builder) Submit(ctx context.Context) (err error) {
	if verr := b.Validate(); verr != nil {
		return verr
	}

	payload := b.BuildPayload()

	// A failed save must never crash the dialog.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("List creation panicked: %v", r)
			err = fmt.Errorf("could not create list: %v", r)
		}
	}()

	itemIDs, err := b.creator.CreateList(ctx, payload.CategoryID, payload.ListName, payload.Description, payload.Steps)
	if err != nil {
		log.Printf("List creation failed: name=%q category=%d: %v", payload.ListName, payload.CategoryID, err)
		return fmt.Errorf("could not create list: %w", err)
	}

	log.Printf("List created: name=%q category=%d items=%d", payload.ListName, payload.CategoryID, len(itemIDs))

	if b.onListCreated != nil {
		b.onListCreated(payload.ListName, payload.CategoryID, itemIDs)
	}
	return nil
}
