package domain

// Pool order is significant: indexes are what the seeded draws select.

var suitableActivities = []string{
	"写单元测试", "Code Review", "重构遗留代码", "学习新技术",
	"优化性能", "写文档", "结对编程", "Merge PR",
	"修复 Bug", "部署到生产环境", "更新依赖", "画架构图",
	"喝咖啡思考", "午休充电", "整理代码风格", "写技术博客",
	// Spring Festival
	"给同事发红包", "拜年（远程）", "写新年总结", "立新年Flag",
	"清理代码垃圾", "祭拜服务器", "给项目贴福字", "喝茶摸鱼",
}

var unsuitableActivities = []string{
	"周五上线", "直接推送到 main", "删除数据库", "忽略警告",
	"不写注释", "复制粘贴代码", "跳过测试", "硬编码密码",
	"使用 var", "深层嵌套回调", "过度优化", "重写整个项目",
	"在生产环境调试", "忽视 Code Review", "随意改配置", "熬夜写代码",
	// Spring Festival
	"被催婚", "被问工资", "比较年终奖", "春节值班上线",
	"回复工作消息", "讨论技术选型", "答应做私活", "承诺上线时间",
}

var mysticMessages = []string{
	"今日五行利多，代码运行如丝般顺滑，建议持仓观望",
	"水逆期将至，合约慎入，建议多写防御性代码",
	"紫气东来，今日适合突破技术难关，财运亨通",
	"诸事不宜，建议今日摸鱼，保护发际线",
	"天时地利人和，今日 Deploy 无阻，币价看涨",
	"代码灾星高照，建议备份三次再操作，止损为上",
	// Spring Festival
	"新春吉兆，今日写代码如有神助，年终奖可期",
	"财神爷眷顾，适合发布新版本，用户量暴涨在即",
	"龙腾虎跃之日，宜攻克技术难题，忌处理琐碎Bug",
	"喜气洋洋，今日代码无Bug，测试一次通过",
	"春风得意，适合向老板提涨薪，成功率极高",
	"红包运旺盛，多刷LeetCode，有望跳槽成功",
}

var luckyLanguages = []string{
	"TypeScript", "Rust", "Go", "Python", "JavaScript",
	"Kotlin", "Swift", "C++", "Java", "Elixir",
}

// SuitableActivities returns a copy of the "宜" pool.
func SuitableActivities() []string { return clone(suitableActivities) }

// UnsuitableActivities returns a copy of the "忌" pool.
func UnsuitableActivities() []string { return clone(unsuitableActivities) }

// MysticMessages returns a copy of the mystic message pool.
func MysticMessages() []string { return clone(mysticMessages) }

// LuckyLanguages returns a copy of the lucky language pool.
func LuckyLanguages() []string { return clone(luckyLanguages) }

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
