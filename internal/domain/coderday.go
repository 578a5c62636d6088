package domain

import "time"

type monthDay struct {
	month time.Month
	day   int
}

var coderDays = map[monthDay]string{
	{time.January, 1}:   "元旦部署日",
	{time.February, 14}: "情人节加班日",
	{time.April, 1}:     "愚人节Bug日",
	{time.May, 1}:       "劳动节摸鱼日",
	{time.June, 18}:     "电商大促备战日",
	{time.September, 9}: "重阳节重构日",
	{time.October, 1}:   "国庆长假备份日",
	{time.October, 24}:  "程序员节",
	{time.November, 11}: "双十一值守日",
	{time.December, 24}: "平安夜上线日",
	{time.December, 31}: "跨年部署日",
}

// CoderDay returns the programmer festival that falls on d, if any.
func CoderDay(d Date) (string, bool) {
	name, ok := coderDays[monthDay{d.Month, d.Day}]
	return name, ok
}
