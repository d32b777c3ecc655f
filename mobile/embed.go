//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 构建前需要把根目录的 data/ 复制到此目录。
package mobile

import "embed"

//go:embed data/scene.yaml data/resources.yaml
var dataFS embed.FS
