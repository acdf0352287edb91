package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// apiDo выполняет авторизованный запрос к API и декодирует JSON-ответ в out
// (nil — тело не читается). Тело запроса (если есть) сериализуется в JSON.
func apiDo(serverURL *string, method, path string, body, out any) error {
	token, err := ensureAccessToken(serverURL)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, *serverURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// access-токен мог протухнуть между запусками; сбросим кэш,
		// чтобы следующий вызов прошёл через refresh.
		_ = os.Remove(tokenPath())
		return fmt.Errorf("unauthorized, please login again")
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiGet(serverURL *string, path string, out any) error {
	return apiDo(serverURL, http.MethodGet, path, nil, out)
}

// apiDownload выполняет авторизованный GET и возвращает тело и имя файла
// из Content-Disposition (пустое — если заголовка нет).
func apiDownload(serverURL *string, path string) ([]byte, string, error) {
	token, err := ensureAccessToken(serverURL)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequest(http.MethodGet, *serverURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("GET %s failed: %s", path, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	filename := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if i := strings.Index(cd, `filename="`); i >= 0 {
			rest := cd[i+len(`filename="`):]
			if j := strings.IndexByte(rest, '"'); j >= 0 {
				filename = rest[:j]
			}
		}
	}
	return data, filename, nil
}

func printJSON(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
