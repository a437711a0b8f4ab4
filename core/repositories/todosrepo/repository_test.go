package todosrepo_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jrazmi/todoview/core/repositories"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/repositories/todosrepo/stores/todosmemstore"
	"github.com/jrazmi/todoview/sdk/logger"
)

func newRepo(t *testing.T) (*todosrepo.Repository, *bytes.Buffer) {
	t.Helper()
	store, err := todosmemstore.New(todosrepo.SampleTasks())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	var buf bytes.Buffer
	return todosrepo.NewRepository(logger.NewDefault(logger.WithOutput(&buf)), store), &buf
}

func TestSampleTasks(t *testing.T) {
	a := todosrepo.SampleTasks()
	b := todosrepo.SampleTasks()
	a[0].Title = "changed"
	if b[0].Title != "Go to Market" {
		t.Error("SampleTasks shares backing storage between calls")
	}

	want := []bool{true, false, true, false}
	for i, task := range b {
		if task.ID != i+1 || task.Completed != want[i] {
			t.Errorf("sample %d = %+v", i, task)
		}
	}
}

func TestRepositoryReads(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	open := false
	tasks, err := repo.List(ctx, todosrepo.QueryFilter{Completed: &open})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Title != "Study" || tasks[1].Title != "Article" {
		t.Errorf("incomplete tasks = %+v", tasks)
	}

	if _, err := repo.Get(ctx, 5); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Get(5) err = %v", err)
	}
}

func TestRepositoryRefusesMutation(t *testing.T) {
	repo, buf := newRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, todosrepo.CreateTask{Title: "new"}); !errors.Is(err, repositories.ErrOperationNotSupported) {
		t.Errorf("Create err = %v", err)
	}
	if err := repo.Update(ctx, 1, todosrepo.UpdateTask{}); !errors.Is(err, repositories.ErrOperationNotSupported) {
		t.Errorf("Update err = %v", err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, repositories.ErrOperationNotSupported) {
		t.Errorf("Delete err = %v", err)
	}

	all, _ := repo.List(ctx, todosrepo.QueryFilter{})
	if len(all) != 4 {
		t.Errorf("store changed after refused mutations: %d tasks", len(all))
	}
	if !bytes.Contains(buf.Bytes(), []byte("refused task delete")) {
		t.Error("refusal not logged")
	}
}
