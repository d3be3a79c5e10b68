package recipe

import (
	"context"
	"errors"
	"strings"

	"recipe-service/domain"
	"recipe-service/entities"
	"recipe-service/internal/utils/dbctx"
	"recipe-service/internal/utils/logger"
	"recipe-service/pkg/aggregate"
	"recipe-service/pkg/category"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	opCreate = "recipe.create"
	opUpdate = "recipe.update"
	opDelete = "recipe.delete"
	opList   = "recipe.list"
	opShow   = "recipe.show"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, req domain.RecipeListRequest) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		writer             *aggregate.Writer
		validator          *validator.Validate
		log                *logger.Logger
		tracer             trace.Tracer
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	categoryRepository category.CategoryRepository,
	writer *aggregate.Writer,
	validator *validator.Validate,
	baseLog *logger.Logger,
) RecipeService {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		writer:             writer,
		validator:          validator,
		log:                baseLog.With("service", "RecipeService"),
		tracer:             otel.Tracer("recipe-service/recipe"),
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	if fields := ValidateRecipeRequest(s.validator, req); len(fields) > 0 {
		return domain.RecipeResponse{}, domain.NewValidationError(opCreate, fields)
	}

	recipe := &entities.Recipe{}
	applyHeader(recipe, req)

	var saved *entities.Recipe
	err := s.writer.Execute(ctx, opCreate, func(dbc dbctx.Context) error {
		if err := s.recipeRepository.CreateRecipe(dbc.Ctx, dbc.Tx, recipe); err != nil {
			return err
		}
		if err := s.writeChildren(dbc, recipe.ID, req); err != nil {
			return err
		}
		var err error
		saved, err = s.recipeRepository.GetRecipeWithChildren(dbc.Ctx, dbc.Tx, recipe.ID)
		return err
	})
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	s.logWrite("recipe created", saved)
	return toRecipeResponse(saved), nil
}

// UpdateRecipe fully replaces the header, both child collections and the tag
// set of an existing recipe.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	if fields := ValidateRecipeRequest(s.validator, req); len(fields) > 0 {
		return domain.RecipeResponse{}, domain.NewValidationError(opUpdate, fields)
	}
	id, err := parseRecipeID(opUpdate, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	var saved *entities.Recipe
	err = s.writer.Execute(ctx, opUpdate, func(dbc dbctx.Context) error {
		existing, err := s.recipeRepository.GetRecipeByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		applyHeader(existing, req)
		if err := s.recipeRepository.UpdateRecipeHeader(dbc.Ctx, dbc.Tx, existing); err != nil {
			return err
		}
		if err := s.writeChildren(dbc, id, req); err != nil {
			return err
		}
		saved, err = s.recipeRepository.GetRecipeWithChildren(dbc.Ctx, dbc.Tx, id)
		return err
	})
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	s.logWrite("recipe updated", saved)
	return toRecipeResponse(saved), nil
}

// writeChildren replaces ingredients, steps and category links of recipeID.
// It must run inside the caller's transaction.
func (s *recipeService) writeChildren(dbc dbctx.Context, recipeID uuid.UUID, req domain.RecipeRequest) error {
	if _, err := s.recipeRepository.ReplaceIngredients(dbc.Ctx, dbc.Tx, recipeID, ingredientRows(req)); err != nil {
		return err
	}
	if _, err := s.recipeRepository.ReplaceSteps(dbc.Ctx, dbc.Tx, recipeID, stepInstructions(req)); err != nil {
		return err
	}

	categories, err := s.categoryRepository.ResolveAll(dbc.Ctx, dbc.Tx, req.Categories)
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return s.recipeRepository.ReplaceCategories(dbc.Ctx, dbc.Tx, recipeID, ids)
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.RecipeListRequest) ([]domain.RecipeResponse, error) {
	sort := NewSort(req.OrderBy, req.Order)

	ctx, span := s.tracer.Start(ctx, opList, trace.WithAttributes(
		attribute.String("sort.column", sort.Column),
		attribute.String("sort.direction", sort.Direction()),
	))
	defer span.End()

	recipes, err := s.recipeRepository.GetRecipes(ctx, nil, sort)
	if err != nil {
		return nil, s.failSpan(span, aggregate.MapError(opList, err))
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error) {
	ctx, span := s.tracer.Start(ctx, opShow, trace.WithAttributes(attribute.String("recipe.id", recipeID)))
	defer span.End()

	id, err := parseRecipeID(opShow, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, s.failSpan(span, err)
	}
	recipe, err := s.recipeRepository.GetRecipeWithChildren(ctx, nil, id)
	if err != nil {
		return domain.RecipeResponse{}, s.failSpan(span, aggregate.MapError(opShow, err))
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	id, err := parseRecipeID(opDelete, recipeID)
	if err != nil {
		return err
	}
	err = s.writer.Execute(ctx, opDelete, func(dbc dbctx.Context) error {
		return s.recipeRepository.DeleteRecipe(dbc.Ctx, dbc.Tx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("recipe deleted", "recipe_id", id)
	return nil
}

func (s *recipeService) logWrite(msg string, r *entities.Recipe) {
	s.log.Info(msg,
		"recipe_id", r.ID,
		"ingredients", len(r.Ingredients),
		"steps", len(r.Steps),
		"categories", len(r.RecipeCategories),
	)
}

func (s *recipeService) failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(domain.CodeOf(err)))
	return err
}

// parseRecipeID treats an id that is not a UUID as a recipe that does not exist.
func parseRecipeID(op, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.NewError(domain.CodeNotFound, op, domain.ErrRecipeNotFound.Error(), domain.ErrRecipeNotFound)
	}
	return id, nil
}
