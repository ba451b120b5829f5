package shared

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/metrics"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
	"github.com/Kargones/gitea-vcs/internal/pkg/tracing"
)

// Reply - данные результата команды со сводкой для текстового вывода.
type Reply struct {
	Data    any
	Summary *output.SummaryInfo
}

// ExecFunc выполняет тело команды.
type ExecFunc func(ctx context.Context) (*Reply, error)

// Run выполняет fn и записывает результат в env.Out через env.Writer.
//
// Ошибка fn превращается в Result со статусом error и кодом из
// apperrors.CodeOf, после чего возвращается вызывающему. Длительность
// и успешность команды передаются в env.Metrics.
func Run(ctx context.Context, env *command.Env, name string, fn ExecFunc) error {
	start := time.Now()

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
		ctx = tracing.WithTraceID(ctx, traceID)
	}

	ctx, span := tracing.StartSpan(ctx, "command."+name, attribute.String("command", name))
	defer span.End()

	log := loggerOf(env).With("command", name, "trace_id", traceID)
	log.Debug("запуск команды")

	reply, err := fn(ctx)
	duration := time.Since(start)
	collectorOf(env).RecordCommand(name, duration, err == nil)

	var result *output.Result
	if err != nil {
		code := apperrors.CodeOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, code)
		log.Error("команда завершилась с ошибкой",
			"code", code,
			"error", err.Error(),
			"duration_ms", duration.Milliseconds(),
		)
		result = output.NewError(name, code, err.Error())
	} else {
		log.Info("команда выполнена", "duration_ms", duration.Milliseconds())
		result = output.NewSuccess(name, nil)
		if reply != nil {
			result.Data = reply.Data
			result.Summary = reply.Summary
		}
	}
	result.Metadata.DurationMs = duration.Milliseconds()
	result.Metadata.TraceID = traceID

	if werr := env.Writer.Write(env.Out, result); werr != nil {
		log.Error("не удалось записать результат", "error", werr.Error())
		if err == nil {
			err = apperrors.NewAppError(apperrors.ErrOutputFormat, "не удалось записать результат", werr)
		}
	}
	return err
}

func loggerOf(env *command.Env) logging.Logger {
	if env.Logger == nil {
		return logging.NewNopLogger()
	}
	return env.Logger
}

func collectorOf(env *command.Env) metrics.Collector {
	if env.Metrics == nil {
		return metrics.NewNopCollector()
	}
	return env.Metrics
}
