package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-TableBooking/internal/config"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/engine"
	"github.com/m04kA/SMC-TableBooking/internal/horizon"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
)

const notificationsBuffer = 256

// session движок доступности, запущенный в фоне для одной CLI команды
type session struct {
	engine     *engine.Engine
	recorder   *engine.Recorder
	publisher  *notifier.Publisher
	metricsSrv *http.Server
	cancel     context.CancelFunc
	done       chan struct{}
	log        *logger.Logger
}

// startSession запускает движок. Если метрики включены, счетчики движка
// пишутся в Prometheus и, при непустом metricsAddr, отдаются по HTTP.
func startSession(ctx context.Context, cfg *config.Config, log *logger.Logger, metricsAddr string) (*session, error) {
	client := bookingapi.NewClient(cfg.BookingAPI.URL, cfg.BookingAPI.TimeoutDuration(), log)
	horizonCtl := horizon.NewController(cfg.Horizon.DaysAhead, horizon.RealClock{})
	recorder := engine.NewRecorder(notificationsBuffer)

	s := &session{recorder: recorder, done: make(chan struct{}), log: log}

	var n engine.Notifier = recorder
	if cfg.AMQP.Enabled {
		pub, err := notifier.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		s.publisher = pub
		n = engine.Fanout{recorder, pub}
		log.Info("Reservation events are published to exchange %s", cfg.AMQP.Exchange)
	}

	engineMetrics := newEngineMetrics(cfg.Metrics, prometheus.DefaultRegisterer)
	if engineMetrics != nil && metricsAddr != "" {
		s.metricsSrv = serveMetrics(metricsAddr, cfg.Metrics.Path, log)
	}

	s.engine = engine.New(client, horizonCtl, cfg.Restaurant.TableIDs(), n, engineMetrics, log)

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go func() {
		defer close(s.done)
		if err := s.engine.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Engine stopped: %v", err)
		}
	}()

	return s, nil
}

// open выставляет дату и час в пикерах и ждет загрузки занятости.
// Пустая дата означает сегодня.
func (s *session) open(ctx context.Context, date domain.DateKey, hour string) (engine.Snapshot, error) {
	s.engine.Post(engine.HorizonChanged{Min: date})
	if date != "" {
		s.engine.Post(engine.DateChanged{Date: date})
	}
	s.engine.Post(engine.HourChanged{Hour: hour})

	for {
		select {
		case <-ctx.Done():
			return engine.Snapshot{}, fmt.Errorf("waiting for availability: %w", ctx.Err())
		case n := <-s.recorder.C():
			switch n.Kind {
			case engine.KindLoadFailed:
				return engine.Snapshot{}, fmt.Errorf("%s: %w", n.Message, n.Err)
			case engine.KindWarning:
				return engine.Snapshot{}, fmt.Errorf("%s: %w", n.Message, n.Err)
			case engine.KindAvailabilityUpdated:
				snap, err := s.engine.Inspect(ctx)
				if err != nil {
					return engine.Snapshot{}, err
				}
				if snap.Loaded && snap.Hour == hour && (date == "" || snap.Date == date) {
					return snap, nil
				}
			}
		}
	}
}

// await ждет первое уведомление одного из типов kinds
func (s *session) await(ctx context.Context, kinds ...engine.Kind) (engine.Notification, error) {
	for {
		select {
		case <-ctx.Done():
			return engine.Notification{}, ctx.Err()
		case n := <-s.recorder.C():
			for _, k := range kinds {
				if n.Kind == k {
					return n, nil
				}
			}
		}
	}
}

func (s *session) close() {
	s.cancel()
	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		s.log.Warn("Engine did not stop in time")
	}
	if s.publisher != nil {
		s.publisher.Close()
	}
	if s.metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.metricsSrv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("Metrics server shutdown: %v", err)
		}
	}
}

// newEngineMetrics возвращает счетчики движка или nil, если метрики выключены
func newEngineMetrics(cfg config.MetricsConfig, reg prometheus.Registerer) engine.Metrics {
	if !cfg.Enabled {
		return nil
	}
	return metrics.New(cfg.ServiceName, reg)
}

func serveMetrics(addr, path string, log *logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Info("Engine metrics exposed at %s%s", addr, path)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics server failed: %v", err)
		}
	}()
	return srv
}

func parseDateFlag(value string) (domain.DateKey, error) {
	if value == "" {
		return "", nil
	}
	return domain.ParseDateKey(value)
}
