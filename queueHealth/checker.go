package queueHealth

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"

	rabbithole "github.com/michaelklishin/rabbit-hole/v2"
	"github.com/monobilisim/check-rabbitmq-queues/common"
	"github.com/rs/zerolog/log"
)

// Failure texts recorded as a queue's length when its query fails. They end
// up verbatim in the status line.
const (
	msgNetworkError = "Can not communicate with RabbitMQ."
	msgMissingData  = "Cannot obtain queue data."
	msgNotFound     = "Queue not found."
	msgUnauthorized = "Unauthorized."
)

// Check queries the current depth of every configured queue and classifies
// it against its thresholds. A failed query classifies the queue as
// WARNING, never CRITICAL, and never aborts the remaining checks.
//
// Queues are visited in sorted name order so the status line is stable
// across runs.
func Check(client QueueFetcher, vhost string, queues map[string]common.QueueThreshold) *Stats {
	stats := NewStats()

	restore, err := common.SilenceStdout()
	if err == nil {
		defer restore()
	} else {
		log.Warn().Err(err).Msg("Could not silence stdout during queue checks")
	}

	for _, name := range sortedQueueNames(queues) {
		thresholds := queues[name]

		queue, err := client.GetQueue(vhost, name)
		if err != nil {
			stats.Warning = append(stats.Warning, name)
			stats.Lengths[name] = classifyFailure(err)
			log.Debug().Err(err).Str("queue", name).Str("vhost", vhost).Msg("Queue query failed")
			continue
		}
		if queue == nil {
			stats.Warning = append(stats.Warning, name)
			stats.Lengths[name] = msgMissingData
			continue
		}

		length := queue.Messages
		if length > thresholds.Critical {
			stats.Critical = append(stats.Critical, name)
		} else if length > thresholds.Warning {
			stats.Warning = append(stats.Warning, name)
		}
		stats.Lengths[name] = strconv.Itoa(length)

		log.Debug().
			Str("queue", name).
			Int("length", length).
			Int("warning", thresholds.Warning).
			Int("critical", thresholds.Critical).
			Msg("Queue length checked")
	}

	return stats
}

// classifyFailure maps a failed queue query to its display text. HTTP
// status errors surface as rabbithole.ErrorResponse; a body the client
// could not decode means the management API returned something without the
// expected queue data; everything else is a transport problem.
func classifyFailure(err error) string {
	var httpErr rabbithole.ErrorResponse
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case 404:
			return msgNotFound
		case 401:
			return msgUnauthorized
		default:
			return "Unhandled HTTP error, status: " + strconv.Itoa(httpErr.StatusCode)
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return msgMissingData
	}

	return msgNetworkError
}

func sortedQueueNames(queues map[string]common.QueueThreshold) []string {
	names := make([]string, 0, len(queues))
	for name := range queues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
