package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"

	"alertmon/internal/ingest"
	"alertmon/internal/models"

	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"
)

func startMetricServer(port string) {
	http.Handle("/metrics", promhttp.Handler())

	go func() {
		log.Printf("Starting metrics server on :%s", port)
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			log.Fatalf("Failed to start metrics server: %v", err)
		}
	}()
}

func collectCPU(wg *sync.WaitGroup, out chan<- models.MetricSample, host string, parentSpan opentracing.Span) {
	defer wg.Done()

	cpuSpan := opentracing.StartSpan("collect-cpu", opentracing.ChildOf(parentSpan.Context()))
	defer cpuSpan.Finish()

	cpuUsage, err := cpu.Percent(time.Second, false)
	if err != nil {
		log.Println("Error getting CPU usage:", err)
		cpuSpan.SetTag("error", true)
		return
	}
	if len(cpuUsage) == 0 {
		return
	}

	cpuSpan.SetTag("cpu_usage_percent", cpuUsage[0])
	out <- models.MetricSample{
		Resource:  host,
		Metric:    "cpu_usage_percent",
		Value:     cpuUsage[0],
		Timestamp: time.Now().UTC(),
	}
}

func collectMemory(wg *sync.WaitGroup, out chan<- models.MetricSample, host string, parentSpan opentracing.Span) {
	defer wg.Done()

	memSpan := opentracing.StartSpan("collect-memory", opentracing.ChildOf(parentSpan.Context()))
	defer memSpan.Finish()

	vMem, err := mem.VirtualMemory()
	if err != nil {
		log.Println("Error getting memory usage:", err)
		memSpan.SetTag("error", true)
		return
	}

	memSpan.SetTag("memory_used_percent", vMem.UsedPercent)
	out <- models.MetricSample{
		Resource:  host,
		Metric:    "mem_usage_percent",
		Value:     vMem.UsedPercent,
		Timestamp: time.Now().UTC(),
	}
}

func collectDisk(wg *sync.WaitGroup, out chan<- models.MetricSample, host string, parentSpan opentracing.Span) {
	defer wg.Done()

	diskSpan := opentracing.StartSpan("collect-disk", opentracing.ChildOf(parentSpan.Context()))
	defer diskSpan.Finish()

	partitions, err := disk.Partitions(false)
	if err != nil {
		log.Printf("Error fetching disk partitions: %v\n", err)
		diskSpan.SetTag("error", true)
		return
	}

	for _, partition := range partitions {
		usage, err := disk.Usage(partition.Mountpoint)
		if err != nil {
			log.Printf("Error fetching disk usage: %v\n", err)
			continue
		}
		out <- models.MetricSample{
			Resource:  host,
			Metric:    "disk_used_percent",
			Value:     usage.UsedPercent,
			Labels:    map[string]string{"mountpoint": partition.Mountpoint},
			Timestamp: time.Now().UTC(),
		}
	}
}

func collectNetwork(wg *sync.WaitGroup, out chan<- models.MetricSample, host string, parentSpan opentracing.Span) {
	defer wg.Done()

	netSpan := opentracing.StartSpan("collect-network", opentracing.ChildOf(parentSpan.Context()))
	defer netSpan.Finish()

	counters, err := gopsnet.IOCounters(false)
	if err != nil {
		log.Printf("Error fetching network counters: %v\n", err)
		netSpan.SetTag("error", true)
		return
	}

	for _, counter := range counters {
		now := time.Now().UTC()
		labels := map[string]string{"interface": counter.Name}
		out <- models.MetricSample{
			Resource: host, Metric: "net_bytes_sent_mb",
			Value: float64(counter.BytesSent >> 20), Labels: labels, Timestamp: now,
		}
		out <- models.MetricSample{
			Resource: host, Metric: "net_bytes_recv_mb",
			Value: float64(counter.BytesRecv >> 20), Labels: labels, Timestamp: now,
		}
	}
}

func collectAndPublish(writer *kafka.Writer, host string, tracer opentracing.Tracer) {
	rootSpan := tracer.StartSpan("agent-collect-cycle")
	defer rootSpan.Finish()

	out := make(chan models.MetricSample, 32)
	var wg sync.WaitGroup
	wg.Add(4)
	go collectCPU(&wg, out, host, rootSpan)
	go collectMemory(&wg, out, host, rootSpan)
	go collectDisk(&wg, out, host, rootSpan)
	go collectNetwork(&wg, out, host, rootSpan)

	go func() {
		wg.Wait()
		close(out)
	}()

	var messages []kafka.Message
	for sample := range out {
		data, err := json.Marshal(sample)
		if err != nil {
			log.Printf("Could not marshal sample: %v", err)
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(sample.Resource),
			Value: data,
		})
	}

	if len(messages) == 0 {
		return
	}
	if err := writer.WriteMessages(context.Background(), messages...); err != nil {
		log.Printf("Failed to write samples to Kafka: %v", err)
		rootSpan.SetTag("error", true)
		return
	}
	rootSpan.SetTag("samples", len(messages))
	log.Printf("Published %d samples", len(messages))
}

func main() {
	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		log.Fatal("KAFKA_BROKERS environment variable is not set")
	}
	kafkaTopic := os.Getenv("KAFKA_TOPIC")
	if kafkaTopic == "" {
		log.Fatal("KAFKA_TOPIC environment variable is not set")
	}

	jaegerEndpoint := os.Getenv("JAEGER_COLLECTOR")
	if jaegerEndpoint == "" {
		jaegerEndpoint = "http://jaeger:14268/api/traces"
	}
	tracer, closeTracer, err := ingest.InitTracer("alertmon-agent", jaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize Jaeger tracer: %v", err)
	}
	defer closeTracer()

	interval := 30 * time.Second
	if v := os.Getenv("AGENT_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("Invalid AGENT_INTERVAL: %v", err)
		}
		interval = parsed
	}

	host, err := os.Hostname()
	if err != nil {
		log.Fatalf("Error getting hostname: %v", err)
	}

	startMetricServer("9100")

	log.Printf("Creating Kafka producer %s with topic %s", kafkaBrokers, kafkaTopic)
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  strings.Split(kafkaBrokers, ","),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	})
	defer writer.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	collectAndPublish(writer, host, tracer)
	for {
		select {
		case <-sigs:
			log.Println("Received termination signal, stopping agent...")
			return
		case <-ticker.C:
			collectAndPublish(writer, host, tracer)
		}
	}
}
