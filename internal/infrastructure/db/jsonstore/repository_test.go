package jsonstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questlog/questlog/internal/core/domain"
)

func TestUserRepository_Create_AllocatesMonotonicIDs(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	alice, err := repo.Create(ctx, &domain.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	bob, err := repo.Create(ctx, &domain.User{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, alice.UserID)
	assert.Equal(t, 2, bob.UserID)
}

func TestUserRepository_Create_CaseInsensitiveDuplicate(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Username: "Alice"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Username: "aLiCe"})
	require.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserRepository_FindByUsername_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Username: "Alice"})
	require.NoError(t, err)

	found, err := repo.FindByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Username)

	_, err = repo.FindByUsername(ctx, "nobody")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Update_UniquenessExcludesSelf(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	alice, err := repo.Create(ctx, &domain.User{Username: "alice"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.User{Username: "bob"})
	require.NoError(t, err)

	// Re-saving the unchanged username is not a conflict.
	alice.Email = "new@x.com"
	require.NoError(t, repo.Update(ctx, alice))

	// Taking someone else's name is.
	alice.Username = "BOB"
	require.ErrorIs(t, repo.Update(ctx, alice), domain.ErrUserExists)

	require.ErrorIs(t, repo.Update(ctx, &domain.User{UserID: 99, Username: "carol"}), domain.ErrUserNotFound)
}

func TestUserRepository_AppendRefreshToken(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	alice, err := repo.Create(ctx, &domain.User{Username: "alice", RefreshTokens: []string{}})
	require.NoError(t, err)

	require.NoError(t, repo.AppendRefreshToken(ctx, alice.UserID, "tok-1"))
	require.NoError(t, repo.AppendRefreshToken(ctx, alice.UserID, "tok-2"))

	found, err := repo.FindByID(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1", "tok-2"}, found.RefreshTokens)

	require.ErrorIs(t, repo.AppendRefreshToken(ctx, 99, "tok"), domain.ErrUserNotFound)
}

func TestTaskRepository_ListScopedToOwner(t *testing.T) {
	repo := NewTaskRepository(newTestStore(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &domain.Task{UserID: 1, TaskName: "t", Status: "open"})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.Task{UserID: 2, TaskName: "other", Status: "open"})
	require.NoError(t, err)

	tasks, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	seen := map[int]bool{}
	for _, task := range tasks {
		assert.Equal(t, 1, task.UserID)
		assert.False(t, seen[task.TaskID], "task_id %d repeated", task.TaskID)
		seen[task.TaskID] = true
	}

	empty, err := repo.ListByUser(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTaskRepository_Delete_ScopedToOwner(t *testing.T) {
	repo := NewTaskRepository(newTestStore(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, &domain.Task{UserID: 1, TaskName: "mine", Status: "open"})
	require.NoError(t, err)

	// Another user deleting it reports not-found, and the task survives.
	require.ErrorIs(t, repo.Delete(ctx, 2, task.TaskID), domain.ErrTaskNotFound)
	tasks, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.NoError(t, repo.Delete(ctx, 1, task.TaskID))
	require.ErrorIs(t, repo.Delete(ctx, 1, task.TaskID), domain.ErrTaskNotFound)
}

func TestTaskRepository_IDsNeverReused(t *testing.T) {
	repo := NewTaskRepository(newTestStore(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Task{UserID: 1, TaskName: "a", Status: "open"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, 1, first.TaskID))

	second, err := repo.Create(ctx, &domain.Task{UserID: 1, TaskName: "b", Status: "open"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.TaskID)
	assert.Equal(t, 2, second.TaskID)
}

func TestCharacterRepository_CreateListDelete(t *testing.T) {
	repo := NewCharacterRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Character{
		UserID:         1,
		CharacterName:  "Varric",
		CharacterRace:  "dwarf",
		CharacterClass: "rogue",
		CharacterBuild: "marksman",
		CharacterLevel: "12",
		CharacterSheet: "https://sheets.example/varric",
		CharacterImage: "https://img.example/varric.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.CharacterID)

	require.ErrorIs(t, repo.Delete(ctx, 2, created.CharacterID), domain.ErrCharacterNotFound)

	characters, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "Varric", characters[0].CharacterName)

	require.NoError(t, repo.Delete(ctx, 1, created.CharacterID))
	characters, err = repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, characters)
}
