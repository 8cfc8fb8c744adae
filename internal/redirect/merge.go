package redirect

import (
	"net/url"
)

// AttributionParams 会被补全的 UTM 参数
var AttributionParams = []string{"utm_source", "utm_medium", "utm_campaign"}

// MergeAttribution 把链接上的 UTM 参数补到目标 URL 上
//
// 目标 URL 中已有非空值的参数保持原样；空值参数被丢弃。
// 重新编码后每个参数只保留第一个非空值。
// scheme、host、path 和 fragment 不变。
func MergeAttribution(target string, attribution map[string]string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}

	// 容忍个别无法解码的参数
	parsed, _ := url.ParseQuery(u.RawQuery)

	// 空值视为未出现，每个参数只保留第一个非空值
	query := make(url.Values, len(parsed))
	for key, values := range parsed {
		for _, v := range values {
			if v != "" {
				query.Set(key, v)
				break
			}
		}
	}

	for _, key := range AttributionParams {
		if query.Has(key) {
			continue
		}
		if value := attribution[key]; value != "" {
			query.Set(key, value)
		}
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}
