package components

// Box 轴对齐包围盒，所有实体共用的位置与尺寸
// 坐标为屏幕坐标（左上角为原点，Y 轴向下）
type Box struct {
	X      float64 // 左上角X坐标（像素）
	Y      float64 // 左上角Y坐标（像素）
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素）
}

// Center 返回包围盒中心点
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}
