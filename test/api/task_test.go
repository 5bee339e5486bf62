//go:build integration

package api_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func createUser(t *testing.T, role, department string) (userView, string) {
	t.Helper()
	username := uniqueName("u")
	password := "Password1!"
	body := map[string]interface{}{
		"username":  username,
		"password":  password,
		"full_name": "Test " + username,
		"role":      role,
	}
	if department != "" {
		body["department"] = department
	}
	resp, out, err := do(adminToken, http.MethodPost, "/users", body)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), out.Message)

	var u userView
	require.NoError(t, out.Decode(&u))
	t.Cleanup(func() {
		_, _, _ = do(adminToken, http.MethodDelete, "/users/"+u.ID, nil)
	})

	token, err := login(username, password)
	require.NoError(t, err)
	return u, token
}

type notificationView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	IsRead  bool   `json:"is_read"`
}

func unreadCount(t *testing.T, token string) int {
	t.Helper()
	var out struct {
		Count int `json:"count"`
	}
	resp, err := client(token).R().SetResult(&out).Get("/notifications/count")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	return out.Count
}

func TestTeamMemberEditsOnlyAssignedTasks(t *testing.T) {
	c := createClinic(t, uniqueName("Perm "), "2030-06-01")
	tasks := listTasks(t, c.ID)
	require.NotEmpty(t, tasks)
	task := tasks[0]

	member, memberToken := createUser(t, "team_member", "")

	resp, _, err := do(memberToken, http.MethodPatch, "/tasks/"+task.ID, map[string]string{"status": "In Progress"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	resp, out, err := do(adminToken, http.MethodPatch, "/tasks/"+task.ID, map[string]interface{}{
		"assignee_ids": []string{member.ID},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), out.Message)

	resp, out, err = do(memberToken, http.MethodPatch, "/tasks/"+task.ID, map[string]string{"status": "Complete"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), out.Message)

	var updated taskView
	require.NoError(t, out.Decode(&updated))
	assert.Equal(t, "Complete", updated.Status)
}

func TestStatusChangeNotifiesOtherAssignees(t *testing.T) {
	c := createClinic(t, uniqueName("Notify "), "2030-06-01")
	task := listTasks(t, c.ID)[0]
	first, firstToken := createUser(t, "team_member", "")
	second, secondToken := createUser(t, "team_member", "")

	resp, _, err := do(adminToken, http.MethodPatch, "/tasks/"+task.ID, map[string]interface{}{
		"assignee_ids": []string{first.ID, second.ID},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, _, err = do(firstToken, http.MethodPatch, "/tasks/"+task.ID, map[string]string{"status": "Blocked"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	assert.Equal(t, 0, unreadCount(t, firstToken))
	assert.Equal(t, 1, unreadCount(t, secondToken))

	resp, out, err := do(secondToken, http.MethodGet, "/notifications", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	var inbox []notificationView
	require.NoError(t, out.Decode(&inbox))
	require.Len(t, inbox, 1)
	assert.Equal(t, "status_change", inbox[0].Kind)

	assert.Equal(t, 0, unreadCount(t, secondToken))
}

func TestNotesAndMentions(t *testing.T) {
	c := createClinic(t, uniqueName("Notes "), "2030-06-01")
	task := listTasks(t, c.ID)[0]
	mentioned, mentionedToken := createUser(t, "team_member", "")

	resp, out, err := do(adminToken, http.MethodPost, "/tasks/"+task.ID+"/notes", map[string]string{"content": "   "})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "empty note ignored", out.Message)

	resp, out, err = do(adminToken, http.MethodPost, "/tasks/"+task.ID+"/notes", map[string]string{
		"content": "Please review @" + mentioned.Username,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), out.Message)

	resp, out, err = do(mentionedToken, http.MethodGet, "/notifications", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	var inbox []notificationView
	require.NoError(t, out.Decode(&inbox))
	require.NotEmpty(t, inbox)
	assert.Equal(t, "mention", inbox[0].Kind)

	resp, out, err = do(adminToken, http.MethodGet, "/tasks/"+task.ID, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	var detail struct {
		Notes []struct {
			Content string `json:"content"`
		} `json:"notes"`
		CanEdit bool `json:"can_edit"`
	}
	require.NoError(t, out.Decode(&detail))
	require.Len(t, detail.Notes, 1)
	assert.True(t, detail.CanEdit)
}

func TestUploadAndDownloadAttachment(t *testing.T) {
	c := createClinic(t, uniqueName("Files "), "2030-06-01")
	task := listTasks(t, c.ID)[0]

	var out APIResponse
	resp, err := resty.New().SetBaseURL(baseURL).SetAuthToken(adminToken).R().
		SetFileReader("file", "lease.pdf", bytes.NewReader([]byte("%PDF-1.4 test"))).
		SetResult(&out).
		SetError(&out).
		Post("/tasks/" + task.ID + "/attachments")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), out.Message)

	var att struct {
		StoredName   string `json:"stored_name"`
		OriginalName string `json:"original_name"`
	}
	require.NoError(t, out.Decode(&att))
	assert.Equal(t, "lease.pdf", att.OriginalName)
	assert.NotEqual(t, "lease.pdf", att.StoredName)

	dl, err := client(adminToken).R().Get("/attachments/" + att.StoredName)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, dl.StatusCode())
	assert.Equal(t, "%PDF-1.4 test", string(dl.Body()))

	resp, err = resty.New().SetBaseURL(baseURL).SetAuthToken(adminToken).R().
		SetFileReader("file", "payload.exe", bytes.NewReader([]byte("MZ"))).
		Post("/tasks/" + task.ID + "/attachments")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
}
