package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_downloader_requests_rejected_total",
		Help: "Total number of requests rejected before extraction",
	})

	DownloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_downloader_downloads_total",
		Help: "Total number of download attempts",
	}, []string{"quality"})

	DownloadsSuccess = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_downloader_downloads_success_total",
		Help: "Total number of successful downloads",
	}, []string{"quality"})

	DownloadsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_downloader_downloads_failed_total",
		Help: "Total number of failed downloads",
	}, []string{"quality"})

	DownloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "video_downloader_download_duration_seconds",
		Help:    "Download duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
	})

	DownloadBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_downloader_download_bytes_total",
		Help: "Total bytes written to the output directory",
	})
)
