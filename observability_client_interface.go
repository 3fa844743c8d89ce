package devcycle

import (
	"context"
)

/**
 * IObservabilityClient lets embedders plug their own metrics backend into the SDK.
 * Metric names are prefixed with "devcycle.sdk".
 */
type IObservabilityClient interface {
	/**
	 * Init is called once when the client is handed to InitializeGlobalOutputLogger.
	 */
	Init(ctx context.Context) error

	/**
	 * Increment increments a counter metric.
	 * metricName: The name of the metric to increment.
	 * value: The value by which the counter should be incremented.
	 * tags: Optional map of tags for metric dimensions.
	 */
	Increment(metricName string, value int, tags map[string]interface{}) error

	/**
	 * Distribution records a sample for a distribution metric, e.g. custom data payload sizes.
	 */
	Distribution(metricName string, value float64, tags map[string]interface{}) error

	Shutdown(ctx context.Context) error
}
