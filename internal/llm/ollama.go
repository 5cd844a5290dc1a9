package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"model-catalog/internal/model"
)

// LLMProvider is the serving backend consulted for a model's default sampling
// parameters.
type LLMProvider interface {
	ShowModelInfo(ctx context.Context, req *ShowModelRequest) (*ModelInfo, error)
}

type ollamaProvider struct {
	client *http.Client
	url    string
}

func NewOllamaProvider(url string) LLMProvider {
	return &ollamaProvider{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    strings.TrimRight(url, "/"),
	}
}

type ShowModelRequest struct {
	Model string `json:"model"`
}

// ModelInfo is the subset of Ollama's /api/show response the catalog reads.
type ModelInfo struct {
	Modelfile  string `json:"modelfile"`
	Parameters string `json:"parameters"`
	Template   string `json:"template"`
}

func (p *ollamaProvider) ShowModelInfo(ctx context.Context, req *ShowModelRequest) (*ModelInfo, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/api/show", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var info ModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	return &info, nil
}

// ParseParameters applies Ollama's "key value" parameter block on top of base.
// Keys the catalog does not track (stop, num_ctx, ...) are skipped, and so are
// values that do not parse as numbers.
func ParseParameters(block string, base model.ModelOptionalParameters) model.ModelOptionalParameters {
	out := base
	sc := bufio.NewScanner(strings.NewReader(block))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		key, raw := fields[0], fields[1]

		if key == "top_k" {
			if v, err := strconv.Atoi(raw); err == nil {
				out.TopK = v
			}
			continue
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		switch key {
		case "temperature":
			out.Temperature = v
		case "top_p":
			out.TopP = v
		case "min_p":
			out.MinP = v
		case "repeat_penalty":
			out.RepetitionPenalty = v
		case "presence_penalty":
			out.PresencePenalty = v
		case "frequency_penalty":
			out.FrequencyPenalty = v
		}
	}
	return out
}
