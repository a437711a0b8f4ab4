package todosrepobridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jrazmi/todoview/bridge/scaffolding/errs"
	"github.com/jrazmi/todoview/core/repositories"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/todoexport"
	"github.com/jrazmi/todoview/infrastructure/web"
)

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tasks, err := b.todoRepository.List(ctx, filter)
	if err != nil {
		return errs.Newf(errs.Internal, "list todos: %s", err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.todoRepository.Get(ctx, id)
	if err != nil {
		return repoError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpExport(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	format := web.QueryParam(r, "format")
	if format == "" {
		format = todoexport.FormatJSON
	}

	tasks, err := b.todoRepository.List(ctx, filter)
	if err != nil {
		return errs.Newf(errs.Internal, "list todos: %s", err)
	}

	data, contentType, err := todoexport.Export(tasks, format)
	if err != nil {
		if errors.Is(err, todoexport.ErrUnknownFormat) {
			return errs.New(errs.InvalidArgument, err)
		}
		return errs.Newf(errs.Internal, "export todos: %s", err)
	}

	if w := web.GetWriter(ctx); w != nil {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=todos.%s", strings.ToLower(format)))
	}
	return web.NewRawResponse(data, contentType)
}

// The write handlers are refused by the repository before the body or the
// path id are looked at, so a malformed write still answers 405.

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	task, err := b.todoRepository.Create(ctx, todosrepo.CreateTask{})
	if err != nil {
		return repoError(err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	if err := b.todoRepository.Update(ctx, loggedID(r), todosrepo.UpdateTask{}); err != nil {
		return repoError(err)
	}

	return nil
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	if err := b.todoRepository.Delete(ctx, loggedID(r)); err != nil {
		return repoError(err)
	}

	return nil
}

func repoError(err error) *errs.Error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return errs.Newf(errs.NotFound, "%s", repositories.ErrNotFound)
	case errors.Is(err, repositories.ErrOperationNotSupported):
		return errs.Newf(errs.Unimplemented, "%s", repositories.ErrOperationNotSupported)
	default:
		return errs.Newf(errs.Internal, "%s", err)
	}
}
