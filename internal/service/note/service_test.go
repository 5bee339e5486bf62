package note

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-tracker/internal/email"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository/mocks"
	"github.com/jwalitptl/clinic-tracker/internal/service/activity"
	"github.com/jwalitptl/clinic-tracker/internal/service/notification"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/messaging"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

func strPtr(s string) *string { return &s }

type fixture struct {
	svc           *Service
	tasks         *mocks.TaskRepositoryMock
	notes         *mocks.NoteRepositoryMock
	users         *mocks.UserRepositoryMock
	activity      *mocks.ActivityRepositoryMock
	notifications *mocks.NotificationRepositoryMock

	author *model.User
	bob    *model.User
	carol  *model.User
	task   *model.Task
}

// newFixture builds a Marketing task with author and carol in Marketing and
// bob in IT.
func newFixture() *fixture {
	f := &fixture{
		author: &model.User{Base: model.Base{ID: uuid.New()}, Username: "kelly", FullName: "Kelly", Role: model.RoleAdmin, Department: strPtr("Marketing")},
		bob:    &model.User{Base: model.Base{ID: uuid.New()}, Username: "bob", FullName: "Bob", Role: model.RoleTeamMember, Department: strPtr("IT")},
		carol:  &model.User{Base: model.Base{ID: uuid.New()}, Username: "carol", FullName: "Carol", Role: model.RoleTeamMember, Department: strPtr("Marketing")},
	}
	f.task = &model.Task{Base: model.Base{ID: uuid.New()}, ClinicID: uuid.New(), Name: "Launch ads", Department: "Marketing"}
	all := []*model.User{f.author, f.bob, f.carol}

	f.tasks = &mocks.TaskRepositoryMock{
		GetFunc: func(ctx context.Context, id uuid.UUID) (*model.Task, error) { return f.task, nil },
	}
	f.notes = &mocks.NoteRepositoryMock{
		CreateFunc: func(ctx context.Context, note *model.Note) error { return nil },
	}
	f.users = &mocks.UserRepositoryMock{
		ListByUsernamesFunc: func(ctx context.Context, usernames []string) ([]*model.User, error) {
			var out []*model.User
			for _, u := range all {
				for _, name := range usernames {
					if u.Username == name {
						out = append(out, u)
					}
				}
			}
			return out, nil
		},
		ListByDepartmentFunc: func(ctx context.Context, department string) ([]*model.User, error) {
			var out []*model.User
			for _, u := range all {
				if u.HomeDepartment() == department {
					out = append(out, u)
				}
			}
			return out, nil
		},
	}
	f.activity = &mocks.ActivityRepositoryMock{
		CreateFunc: func(ctx context.Context, entry *model.ActivityEntry) error { return nil },
	}
	f.notifications = &mocks.NotificationRepositoryMock{
		CreateFunc: func(ctx context.Context, n *model.Notification) error { return nil },
	}

	clk := clock.NewManaged(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	m := metrics.NewNop()
	notifier := notification.NewService(f.notifications, f.users, f.tasks, messaging.NewNopBroker(), email.NewNopService(), m, clk, notification.Options{})
	f.svc = NewService(f.tasks, f.notes, f.users, activity.NewService(f.activity, clk), notifier, m, clk)
	return f
}

func (f *fixture) sent() map[model.NotificationKind][]uuid.UUID {
	out := map[model.NotificationKind][]uuid.UUID{}
	for _, c := range f.notifications.CreateCalls() {
		out[c.Notification.Kind] = append(out[c.Notification.Kind], c.Notification.UserID)
	}
	return out
}

func TestAddNoteMentionAndBroadcast(t *testing.T) {
	f := newFixture()

	note, err := f.svc.AddNote(context.Background(), f.task.ID, f.author, "  @bob and @carol please check @nobody @kelly ")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "@bob and @carol please check @nobody @kelly", note.Content)
	assert.Equal(t, f.author.ID, *note.AuthorID)

	sent := f.sent()
	assert.ElementsMatch(t, []uuid.UUID{f.bob.ID, f.carol.ID}, sent[model.NotificationMention])
	// carol is mentioned and in the department, so she gets both
	assert.Equal(t, []uuid.UUID{f.carol.ID}, sent[model.NotificationDepartmentNote])

	for _, c := range f.notifications.CreateCalls() {
		switch c.Notification.Kind {
		case model.NotificationMention:
			assert.Equal(t, `Kelly mentioned you in task "Launch ads"`, c.Notification.Message)
		case model.NotificationDepartmentNote:
			assert.Equal(t, `New note on task "Launch ads" in Marketing`, c.Notification.Message)
		}
	}

	entries := f.activity.CreateCalls()
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActionNoteAdded, entries[0].Entry.Action)
}

func TestAddNoteBlankIsNoop(t *testing.T) {
	f := newFixture()

	note, err := f.svc.AddNote(context.Background(), f.task.ID, f.author, " \n\t ")
	require.NoError(t, err)
	assert.Nil(t, note)
	assert.Empty(t, f.tasks.GetCalls())
	assert.Empty(t, f.notes.CreateCalls())
	assert.Empty(t, f.activity.CreateCalls())
}

func TestAddNoteTruncatesActivityDetail(t *testing.T) {
	f := newFixture()
	long := strings.Repeat("x", 200)

	_, err := f.svc.AddNote(context.Background(), f.task.ID, f.author, long)
	require.NoError(t, err)

	assert.Len(t, f.activity.CreateCalls()[0].Entry.Detail, 80)
	assert.Equal(t, long, f.notes.CreateCalls()[0].Note.Content)
}

func TestAddNoteRequiresEditPermission(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AddNote(context.Background(), f.task.ID, f.bob, "hello")
	assert.True(t, errors.Is(err, errors.ErrForbidden))
	assert.Empty(t, f.notes.CreateCalls())
}

func TestParseMentions(t *testing.T) {
	assert.Equal(t, []string{"bob", "jane_doe", "x1"}, ParseMentions("@bob, @jane_doe! @bob email@x1"))
	assert.Empty(t, ParseMentions("no mentions @ here"))
}
