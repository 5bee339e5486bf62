package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Checklist metrics
	ClinicsCreated prometheus.Counter
	ClinicsDeleted prometheus.Counter
	TasksCopied    prometheus.Counter
	StatusChanges  *prometheus.CounterVec

	// Collaboration metrics
	NotesAdded          prometheus.Counter
	AttachmentsUploaded prometheus.Counter
	UploadBytes         prometheus.Histogram
	NotificationsSent   *prometheus.CounterVec

	// Sweep metrics
	DueSoonSweeps   *prometheus.CounterVec
	DueSoonNotified prometheus.Counter
	SweepDuration   prometheus.Histogram

	// Redis metrics
	RedisOperations *prometheus.CounterVec
}

// NewMetrics creates and registers all application metrics on reg.
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ClinicsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clinics_created_total",
			Help:      "Total number of clinics instantiated from the template",
		}),
		ClinicsDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clinics_deleted_total",
			Help:      "Total number of clinics deleted",
		}),
		TasksCopied: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "template_tasks_copied_total",
			Help:      "Total number of template tasks copied into clinics",
		}),
		StatusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_status_changes_total",
			Help:      "Task status transitions by resulting status",
		}, []string{"status"}),

		NotesAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_added_total",
			Help:      "Total number of task notes added",
		}),
		AttachmentsUploaded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attachments_uploaded_total",
			Help:      "Total number of task attachments uploaded",
		}),
		UploadBytes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attachment_size_bytes",
			Help:      "Size of uploaded attachments",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}),
		NotificationsSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Notifications written to user inboxes by kind",
		}, []string{"kind"}),

		DueSoonSweeps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "due_soon_sweeps_total",
			Help:      "Due-soon sweep runs by outcome",
		}, []string{"outcome"}),
		DueSoonNotified: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "due_soon_notifications_total",
			Help:      "Due-soon notifications created by sweeps",
		}),
		SweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "due_soon_sweep_duration_seconds",
			Help:      "Time spent running a due-soon sweep",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}),

		RedisOperations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redis_operations_total",
			Help:      "Total number of Redis operations",
		}, []string{"operation", "status"}),
	}
}

// NewNop returns metrics registered on a private registry, for tests and tools.
func NewNop() *Metrics {
	return NewMetrics(prometheus.NewRegistry(), "test")
}
