package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"todo-auth-service/internal/apperr"
	"todo-auth-service/internal/application/command"
	"todo-auth-service/internal/application/interfaces"
	"todo-auth-service/internal/domain/entities"
)

type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type todoResponse struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserId      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TodoHandler struct {
	todoService interfaces.TodoService
	production  bool
}

func NewTodoHandler(todoService interfaces.TodoService, production bool) *TodoHandler {
	return &TodoHandler{todoService: todoService, production: production}
}

func (h *TodoHandler) Create(c echo.Context) error {
	userId, ok := userIdFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Unauthorized"})
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request body"), h.production)
	}
	if err := validateCreateTodo(&req); err != nil {
		return respondError(c, err, h.production)
	}

	todo, err := h.todoService.Create(c.Request().Context(), userId, &command.CreateTodoCommand{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusCreated, "Todo created successfully", toTodoResponse(todo))
}

func (h *TodoHandler) List(c echo.Context) error {
	userId, ok := userIdFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Unauthorized"})
	}

	todos, err := h.todoService.List(c.Request().Context(), userId)
	if err != nil {
		return respondError(c, err, h.production)
	}

	out := make([]todoResponse, 0, len(todos))
	for _, todo := range todos {
		out = append(out, toTodoResponse(todo))
	}
	return respondOK(c, http.StatusOK, "Todos fetched successfully", out)
}

func (h *TodoHandler) Get(c echo.Context) error {
	userId, ok := userIdFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Unauthorized"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.NotFound("Todo not found"), h.production)
	}

	todo, err := h.todoService.Get(c.Request().Context(), userId, id)
	if err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, "Todo fetched successfully", toTodoResponse(todo))
}

func (h *TodoHandler) Update(c echo.Context) error {
	userId, ok := userIdFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Unauthorized"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.NotFound("Todo not found"), h.production)
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request body"), h.production)
	}
	if err := validateUpdateTodo(&req); err != nil {
		return respondError(c, err, h.production)
	}

	todo, err := h.todoService.Update(c.Request().Context(), userId, id, &command.UpdateTodoCommand{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, "Todo updated successfully", toTodoResponse(todo))
}

func (h *TodoHandler) Delete(c echo.Context) error {
	userId, ok := userIdFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Unauthorized"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.NotFound("Todo not found"), h.production)
	}

	if err := h.todoService.Delete(c.Request().Context(), userId, id); err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, "Todo deleted successfully", nil)
}

func toTodoResponse(todo *entities.Todo) todoResponse {
	return todoResponse{
		Id:          todo.Id.String(),
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		UserId:      todo.UserId.String(),
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}
