package call

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ucall-rpc/ucall-go/cmd/util"
	"github.com/ucall-rpc/ucall-go/rpc/client"
	"github.com/ucall-rpc/ucall-go/rpc/common"
)

var (
	perfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for ucall servers",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfMethod     = "echo"
	perfNumThreads = 10
	perfRequests   = 1000
	perfDumpProm   = false
)

func init() {
	// add flags
	key := "perf-method"
	perfCmd.Flags().String(key, "echo", util.WrapString("Method to invoke for the benchmark"))
	key = "threads"
	perfCmd.Flags().Int(key, 10, util.WrapString("Number of concurrent clients (one connection each)"))
	key = "requests"
	perfCmd.Flags().Int(key, 1000, util.WrapString("Number of requests per client"))
	key = "prometheus"
	perfCmd.Flags().Bool(key, false, util.WrapString("Dump the client metrics in Prometheus exposition format after the run"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	perfMethod = viper.GetString("perf-method")
	perfNumThreads = viper.GetInt("threads")
	perfRequests = viper.GetInt("requests")
	perfDumpProm = viper.GetBool("prometheus")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {
	fmt.Println("Performance testing tool for ucall servers")

	conf, err := util.GetClientConfig()
	if err != nil {
		return err
	}

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(conf.String())
	fmt.Printf("Threads:  %d\n", perfNumThreads)
	fmt.Printf("Requests: %d per thread\n", perfRequests)
	fmt.Println()

	// One latency histogram shared by all workers
	latencies := gometrics.NewHistogram(gometrics.NewUniformSample(perfNumThreads * perfRequests))
	errCount := gometrics.NewCounter()

	// One client per worker: a client owns a single connection and runs
	// strictly sequential calls, so concurrency comes from client count.
	var wg sync.WaitGroup
	start := time.Now()
	for t := 0; t < perfNumThreads; t++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			c, err := util.NewClient()
			if err != nil {
				fmt.Printf("worker %d: %v\n", worker, err)
				errCount.Inc(int64(perfRequests))
				return
			}
			defer c.Close()

			runPerfWorker(c, perfMethod, perfRequests, latencies, errCount)
		}(t)
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := int64(perfNumThreads * perfRequests)
	completed := latencies.Count()
	ps := latencies.Percentiles([]float64{0.5, 0.95, 0.99})

	fmt.Println("Results:")
	fmt.Printf("  %-12s: %d\n", "requests", total)
	fmt.Printf("  %-12s: %d\n", "completed", completed)
	fmt.Printf("  %-12s: %d\n", "errors", errCount.Count())
	fmt.Printf("  %-12s: %s\n", "elapsed", elapsed.Round(time.Millisecond))
	if completed > 0 {
		fmt.Printf("  %-12s: %.0f req/s\n", "throughput", float64(completed)/elapsed.Seconds())
		fmt.Printf("  %-12s: %s\n", "mean", time.Duration(int64(latencies.Mean())))
		fmt.Printf("  %-12s: %s\n", "p50", time.Duration(int64(ps[0])))
		fmt.Printf("  %-12s: %s\n", "p95", time.Duration(int64(ps[1])))
		fmt.Printf("  %-12s: %s\n", "p99", time.Duration(int64(ps[2])))
	}

	if perfDumpProm {
		fmt.Println()
		metrics.WritePrometheus(os.Stdout, false)
	}

	return nil
}

// runPerfWorker issues sequential calls on one client, recording one latency
// sample per completed call. Transport faults and error envelopes count as
// errors only, never as samples.
func runPerfWorker(c *client.Client, method string, requests int, latencies gometrics.Histogram, errCount gometrics.Counter) {
	for i := 0; i < requests; i++ {
		callStart := time.Now()
		res, err := c.Call(method, common.Positional(i))
		if err != nil {
			errCount.Inc(1)
			continue
		}
		if err := res.Err(); err != nil {
			errCount.Inc(1)
			continue
		}
		latencies.Update(time.Since(callStart).Nanoseconds())
	}
}
